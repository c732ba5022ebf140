// Package store holds the in-memory question and answer repositories, the
// identifier and pagination types they are keyed and paged by, and the error
// taxonomy surfaced to the HTTP layer.
package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// defaultSeed is the dataset questions are loaded from at startup.
//
//go:embed seed.json
var defaultSeed []byte

// Store is the process-wide repository. Build one with New, Open or
// OpenDefault and share the pointer with every handler. The two repositories
// are locked independently and are never locked together.
type Store struct {
	Questions *QuestionRepo
	Answers   *AnswerRepo

	genID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new question and
// answer ids. Empty strings from gen fall back to a UUID.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.genID = gen }
}

// New returns a Store with no questions and no answers.
func New(opts ...Option) *Store {
	return build(nil, opts)
}

// Open returns a Store whose questions are decoded from seed, a JSON object
// mapping question id to question record.
func Open(seed []byte, opts ...Option) (*Store, error) {
	questions, err := DecodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return build(questions, opts), nil
}

// OpenDefault returns a Store seeded from the dataset embedded in the binary.
func OpenDefault(opts ...Option) (*Store, error) {
	return Open(defaultSeed, opts...)
}

// DecodeSeed parses a seed dataset. Every record's id must match its key.
func DecodeSeed(seed []byte) (map[QuestionID]Question, error) {
	var questions map[QuestionID]Question
	if err := json.Unmarshal(seed, &questions); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for key, q := range questions {
		if q.ID.IsZero() {
			return nil, fmt.Errorf("decode seed: question %q has no id", key)
		}
		if q.ID != key {
			return nil, fmt.Errorf("decode seed: question %q has id %q", key, q.ID)
		}
	}
	return questions, nil
}

func build(questions map[QuestionID]Question, opts []Option) *Store {
	s := &Store{genID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	s.Questions = newQuestionRepo(questions)
	s.Answers = newAnswerRepo(s.nextAnswerID)
	return s
}

func (s *Store) nextID() string {
	if id := s.genID(); id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *Store) nextQuestionID() QuestionID {
	return QuestionID{value: s.nextID()}
}

func (s *Store) nextAnswerID() AnswerID {
	return AnswerID{value: s.nextID()}
}
