package store

// AnswerBody is the request payload for creating an answer.
type AnswerBody struct {
	Content string `json:"content"`
}

// Answer belongs to the question it was created against. Answers are immutable.
type Answer struct {
	ID         AnswerID   `json:"id"`
	QuestionID QuestionID `json:"question_id"`
	Content    string     `json:"content"`
}

// NewAnswer assigns id to a new answer for questionID.
func NewAnswer(id AnswerID, questionID QuestionID, content string) Answer {
	return Answer{ID: id, QuestionID: questionID, Content: content}
}
