package content

import (
	"math/rand"
	"time"
)

// Shuffler randomizes the display order of question options.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler seeded with the current time.
func NewShuffler() *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededShuffler returns a deterministic Shuffler.
func NewSeededShuffler(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Questions returns copies of questions with shuffled options. A nil Shuffler keeps the order.
func (s *Shuffler) Questions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		opts := append([]string(nil), q.Options...)
		if s != nil {
			s.rnd.Shuffle(len(opts), func(a, b int) {
				opts[a], opts[b] = opts[b], opts[a]
			})
		}
		out[i] = Question{Prompt: q.Prompt, Options: opts, Answer: q.Answer}
	}
	return out
}
