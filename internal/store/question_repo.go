package store

import "sync"

// QuestionRepo is the in-memory question map. It is safe for concurrent use;
// every method holds the lock only for its own duration.
type QuestionRepo struct {
	mu        sync.RWMutex
	questions map[QuestionID]Question
}

func newQuestionRepo(seed map[QuestionID]Question) *QuestionRepo {
	questions := make(map[QuestionID]Question, len(seed))
	for id, q := range seed {
		questions[id] = q.clone()
	}
	return &QuestionRepo{questions: questions}
}

// List returns a snapshot of every question in no particular order.
func (r *QuestionRepo) List() []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Question, 0, len(r.questions))
	for _, q := range r.questions {
		result = append(result, q.clone())
	}
	return result
}

// Get returns the question stored under id.
func (r *QuestionRepo) Get(id QuestionID) (Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// Put inserts q or replaces the question with the same ID. It reports
// whether q was newly inserted.
func (r *QuestionRepo) Put(q Question) bool {
	q = q.clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.questions[q.ID]
	r.questions[q.ID] = q
	return !existed
}

// Delete removes id. Returns false if it was not present.
func (r *QuestionRepo) Delete(id QuestionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return false
	}
	delete(r.questions, id)
	return true
}

// Exists reports whether a question with id is currently stored.
func (r *QuestionRepo) Exists(id QuestionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.questions[id]
	return ok
}

// Len returns the number of stored questions.
func (r *QuestionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}
