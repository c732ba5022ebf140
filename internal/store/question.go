package store

import (
	"encoding/json"
	"slices"
)

// QuestionBody holds the client-editable fields of a question.
type QuestionBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    []Tag  `json:"tags"`
}

// Question is a stored question. Its ID never changes; an update replaces the
// whole record with a new Question carrying the same ID.
type Question struct {
	ID      QuestionID `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Tags    []Tag      `json:"tags"`
}

// NewQuestion combines an id with a body. Used for both seeding and full
// replacement.
func NewQuestion(id QuestionID, body QuestionBody) Question {
	tags := slices.Clone(body.Tags)
	if tags == nil {
		tags = []Tag{}
	}
	return Question{
		ID:      id,
		Title:   body.Title,
		Content: body.Content,
		Tags:    tags,
	}
}

func (q Question) clone() Question {
	q.Tags = slices.Clone(q.Tags)
	if q.Tags == nil {
		q.Tags = []Tag{}
	}
	return q
}

// MarshalJSON always emits tags as an array.
func (q Question) MarshalJSON() ([]byte, error) {
	type plain Question
	p := plain(q)
	if p.Tags == nil {
		p.Tags = []Tag{}
	}
	return json.Marshal(p)
}
