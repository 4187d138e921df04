// Package quiz implements the scoring core of a vocabulary quiz: a single
// pass over a shuffled set of entries, grading one typed answer per entry.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/AaroKoinsaari/language-learning-tool/internal/vocabulary"
)

// ErrEmptyVocabulary is returned when a session is created over an empty set.
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// Result is the tally of a session.
type Result struct {
	Correct int
	Total   int
}

func (r Result) String() string {
	return fmt.Sprintf("Score: %d/%d", r.Correct, r.Total)
}

// Verdict is the scored outcome of a single answer. Expected carries the
// translation so an incorrect answer can be revealed to the user.
type Verdict struct {
	Correct  bool
	Term     string
	Expected string
}

// Session drives one pass over a shuffled vocabulary set. The presentation
// order is fixed at construction and each entry is asked exactly once.
type Session struct {
	cards   []vocabulary.Entry
	policy  Policy
	correct int
	total   int
}

// NewSession shuffles the set's entries into the session's presentation
// order. rand.Shuffle performs a uniform Fisher-Yates permutation. rng may
// be nil, in which case a time-seeded source is used; tests inject a
// seeded one.
func NewSession(set vocabulary.Set, policy Policy, rng *rand.Rand) (*Session, error) {
	if set.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cards := set.Entries()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Session{cards: cards, policy: policy}, nil
}

// Next returns the current entry, or false when every entry has been asked.
func (s *Session) Next() (vocabulary.Entry, bool) {
	if len(s.cards) == 0 {
		return vocabulary.Entry{}, false
	}
	return s.cards[0], true
}

// Grade scores a raw answer against the current entry and advances the
// session. Any input string is tolerated; an answer that does not match
// after normalization is an ordinary incorrect outcome, never an error.
func (s *Session) Grade(answer string) Verdict {
	if len(s.cards) == 0 {
		return Verdict{}
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	s.total++

	correct := Normalize(answer, s.policy) == Normalize(card.Translation, s.policy)
	if correct {
		s.correct++
	}
	return Verdict{Correct: correct, Term: card.Term, Expected: card.Translation}
}

// Remaining returns the number of entries not yet asked.
func (s *Session) Remaining() int {
	return len(s.cards)
}

// Result returns the tally over the questions asked so far.
func (s *Session) Result() Result {
	return Result{Correct: s.correct, Total: s.total}
}
