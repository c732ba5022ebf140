package store

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoValue is returned when an identifier or tag is parsed from an empty string.
var ErrNoValue = errors.New("no value provided")

// QuestionID uniquely identifies a Question. The zero value is not a valid id;
// obtain one from ParseQuestionID or NewQuestionID.
type QuestionID struct {
	value string
}

// ParseQuestionID accepts any non-empty string verbatim.
func ParseQuestionID(s string) (QuestionID, error) {
	if s == "" {
		return QuestionID{}, ErrNoValue
	}
	return QuestionID{value: s}, nil
}

// NewQuestionID returns a freshly generated random id.
func NewQuestionID() QuestionID {
	return QuestionID{value: uuid.NewString()}
}

// String returns the id as supplied or generated.
func (id QuestionID) String() string { return id.value }

// IsZero reports whether id was never parsed or generated.
func (id QuestionID) IsZero() bool { return id.value == "" }

// MarshalText fails on the zero id.
func (id QuestionID) MarshalText() ([]byte, error) {
	if id.value == "" {
		return nil, ErrNoValue
	}
	return []byte(id.value), nil
}

// UnmarshalText parses b with ParseQuestionID.
func (id *QuestionID) UnmarshalText(b []byte) error {
	parsed, err := ParseQuestionID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AnswerID uniquely identifies an Answer. Answer ids are always generated by
// the server; ParseAnswerID exists so every identifier decodes the same way.
type AnswerID struct {
	value string
}

// ParseAnswerID accepts any non-empty string verbatim.
func ParseAnswerID(s string) (AnswerID, error) {
	if s == "" {
		return AnswerID{}, ErrNoValue
	}
	return AnswerID{value: s}, nil
}

// NewAnswerID returns a freshly generated random id.
func NewAnswerID() AnswerID {
	return AnswerID{value: uuid.NewString()}
}

// String returns the generated id.
func (id AnswerID) String() string { return id.value }

// MarshalText fails on the zero id.
func (id AnswerID) MarshalText() ([]byte, error) {
	if id.value == "" {
		return nil, ErrNoValue
	}
	return []byte(id.value), nil
}

// UnmarshalText parses b with ParseAnswerID.
func (id *AnswerID) UnmarshalText(b []byte) error {
	parsed, err := ParseAnswerID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Tag is a free-form label attached to a question. Tags are stored exactly as
// supplied; there is no slug derivation or case folding.
type Tag struct {
	value string
}

// ParseTag accepts any non-empty string verbatim.
func ParseTag(s string) (Tag, error) {
	if s == "" {
		return Tag{}, ErrNoValue
	}
	return Tag{value: s}, nil
}

// MustTag is ParseTag for literals. It panics on the empty string.
func MustTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic("store: " + err.Error())
	}
	return t
}

// String returns the tag text.
func (t Tag) String() string { return t.value }

// MarshalText fails on the zero tag.
func (t Tag) MarshalText() ([]byte, error) {
	if t.value == "" {
		return nil, ErrNoValue
	}
	return []byte(t.value), nil
}

// UnmarshalText parses b with ParseTag.
func (t *Tag) UnmarshalText(b []byte) error {
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

