package store

import (
	"cmp"
	"slices"
)

// ListQuestions returns one page of questions ordered by id.
func (s *Store) ListQuestions(p Pagination) (PaginatedResponse[Question], error) {
	page, err := p.Validate()
	if err != nil {
		return PaginatedResponse[Question]{}, err
	}

	all := s.Questions.List()
	slices.SortFunc(all, func(a, b Question) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return Paginate(page, all), nil
}

// GetQuestion looks up a question by its raw id.
func (s *Store) GetQuestion(rawID string) (Question, error) {
	id, err := ParseQuestionID(rawID)
	if err != nil {
		return Question{}, InvalidID
	}
	q, ok := s.Questions.Get(id)
	if !ok {
		return Question{}, IDNotFound
	}
	return q, nil
}

// CreateQuestion stores body under a newly generated id.
func (s *Store) CreateQuestion(body QuestionBody) Question {
	q := NewQuestion(s.nextQuestionID(), body)
	s.Questions.Put(q)
	return q
}

// ReplaceQuestion overwrites the question stored under rawID with body,
// creating it if it does not exist yet. created is true in the latter case.
func (s *Store) ReplaceQuestion(rawID string, body QuestionBody) (q Question, created bool, err error) {
	id, err := ParseQuestionID(rawID)
	if err != nil {
		return Question{}, false, InvalidID
	}
	q = NewQuestion(id, body)
	return q, s.Questions.Put(q), nil
}

// DeleteQuestion removes the question stored under rawID. Answers that
// reference it are left in place.
func (s *Store) DeleteQuestion(rawID string) error {
	id, err := ParseQuestionID(rawID)
	if err != nil {
		return InvalidID
	}
	if !s.Questions.Delete(id) {
		return IDNotFound
	}
	return nil
}

// CreateAnswer attaches a new answer to the question stored under
// rawQuestionID.
func (s *Store) CreateAnswer(rawQuestionID, content string) (Answer, error) {
	questionID, err := ParseQuestionID(rawQuestionID)
	if err != nil {
		return Answer{}, InvalidID
	}
	return s.Answers.Create(s.Questions, questionID, content)
}

// ListAnswers returns one page of the answers attached to a question, ordered
// by answer id.
func (s *Store) ListAnswers(rawQuestionID string, p Pagination) (PaginatedResponse[Answer], error) {
	questionID, err := ParseQuestionID(rawQuestionID)
	if err != nil {
		return PaginatedResponse[Answer]{}, InvalidID
	}
	page, err := p.Validate()
	if err != nil {
		return PaginatedResponse[Answer]{}, err
	}
	if !s.Questions.Exists(questionID) {
		return PaginatedResponse[Answer]{}, IDNotFound
	}

	all := s.Answers.ListByQuestion(questionID)
	slices.SortFunc(all, func(a, b Answer) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return Paginate(page, all), nil
}
