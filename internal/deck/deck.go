// Package deck supplies the fixed prompt/answer card pools and draws hands
// from them. The catalog is never consumed: draws are without replacement
// within one hand but independent across hands, so duplicate cards across
// players are permitted.
package deck

import (
	"errors"
	"math/rand"
	"sync"

	"fancards/internal/domain"
)

// ErrInsufficientCatalog is returned when a draw asks for more cards than
// the catalog holds
var ErrInsufficientCatalog = errors.New("not enough answer cards in catalog")

// Catalog is the full immutable card set served to clients
type Catalog struct {
	Questions []domain.PromptCard `json:"questions"`
	Answers   []domain.AnswerCard `json:"answers"`
	Actions   []domain.ActionCard `json:"actions"`
}

// Deck draws hands and prompts from the card catalog
type Deck struct {
	prompts []domain.PromptCard
	answers []domain.AnswerCard
	actions []domain.ActionCard

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a deck over the built-in catalog. The rand source is owned by
// the deck; pass a seeded source for deterministic draws in tests.
func New(rng *rand.Rand) *Deck {
	return &Deck{
		prompts: promptCards,
		answers: answerCards,
		actions: actionCards,
		rng:     rng,
	}
}

// DrawHand returns a uniformly shuffled hand of exactly size answer cards
func (d *Deck) DrawHand(size int) ([]domain.AnswerCard, error) {
	if size > len(d.answers) {
		return nil, ErrInsufficientCatalog
	}

	d.mu.Lock()
	order := d.rng.Perm(len(d.answers))
	d.mu.Unlock()

	hand := make([]domain.AnswerCard, 0, size)
	for _, idx := range order[:size] {
		hand = append(hand, d.answers[idx])
	}
	return hand, nil
}

// PickPrompt returns one uniformly random prompt card
func (d *Deck) PickPrompt() domain.PromptCard {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prompts[d.rng.Intn(len(d.prompts))]
}

// Catalog returns the full card catalog
func (d *Deck) Catalog() Catalog {
	return Catalog{
		Questions: d.prompts,
		Answers:   d.answers,
		Actions:   d.actions,
	}
}
