package store

import "sync"

// AnswerRepo is the in-memory answer map, locked independently of the
// question map.
type AnswerRepo struct {
	mu      sync.RWMutex
	answers map[AnswerID]Answer
	newID   func() AnswerID
}

func newAnswerRepo(newID func() AnswerID) *AnswerRepo {
	return &AnswerRepo{
		answers: make(map[AnswerID]Answer),
		newID:   newID,
	}
}

// Create stores a new answer for questionID, failing with IDNotFound if the
// question does not exist. The existence check and the insert are two separate
// critical sections on two different locks: a question deleted in between
// still gets the answer.
func (r *AnswerRepo) Create(questions *QuestionRepo, questionID QuestionID, content string) (Answer, error) {
	if !questions.Exists(questionID) {
		return Answer{}, IDNotFound
	}

	answer := NewAnswer(r.newID(), questionID, content)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers[answer.ID] = answer
	return answer, nil
}

// Get returns the answer stored under id.
func (r *AnswerRepo) Get(id AnswerID) (Answer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.answers[id]
	return a, ok
}

// ListByQuestion returns the answers attached to questionID in no particular
// order.
func (r *AnswerRepo) ListByQuestion(questionID QuestionID) []Answer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Answer, 0)
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			result = append(result, a)
		}
	}
	return result
}

// Len returns the number of stored answers.
func (r *AnswerRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.answers)
}
