package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CardCollection is the on-disk card pack format
type CardCollection struct {
	Name  string         `yaml:"name"`
	Cards []SpectrumCard `yaml:"cards"`
}

// CardService holds the built-in card list shared by every room
type CardService struct {
	builtin []SpectrumCard
}

// LoadCards parses a YAML card pack and validates every card in it
func LoadCards(data []byte) ([]SpectrumCard, error) {
	var collection CardCollection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse card pack: %w", err)
	}

	seen := make(map[string]bool, len(collection.Cards))
	cards := make([]SpectrumCard, 0, len(collection.Cards))
	for _, c := range collection.Cards {
		card, err := c.Normalize()
		if err != nil {
			return nil, err
		}
		if seen[card.ID] {
			return nil, fmt.Errorf("duplicate card id %q in pack %q", card.ID, collection.Name)
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}
	return cards, nil
}

// NewCardService loads the built-in pack. Any extra packs are appended in order.
func NewCardService(builtin []byte, extra ...[]byte) (*CardService, error) {
	cards, err := LoadCards(builtin)
	if err != nil {
		return nil, fmt.Errorf("built-in cards: %w", err)
	}

	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		seen[c.ID] = true
	}
	for i, pack := range extra {
		more, err := LoadCards(pack)
		if err != nil {
			return nil, fmt.Errorf("extra card pack %d: %w", i, err)
		}
		for _, c := range more {
			if seen[c.ID] {
				return nil, fmt.Errorf("extra card pack %d: card id %q already defined", i, c.ID)
			}
			seen[c.ID] = true
			cards = append(cards, c)
		}
	}

	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return &CardService{builtin: cards}, nil
}

// NewCardServiceFromFile is NewCardService with an optional extra pack read from disk
func NewCardServiceFromFile(builtin []byte, path string) (*CardService, error) {
	if path == "" {
		return NewCardService(builtin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cards file %s: %w", path, err)
	}
	return NewCardService(builtin, data)
}

// Builtin returns a copy of the built-in cards
func (s *CardService) Builtin() []SpectrumCard {
	out := make([]SpectrumCard, len(s.builtin))
	copy(out, s.builtin)
	return out
}

// Count returns the number of built-in cards
func (s *CardService) Count() int {
	return len(s.builtin)
}

// Pool unions the built-in cards with a client's custom cards.
// Custom cards are validated and marked as custom.
func (s *CardService) Pool(custom []SpectrumCard) ([]SpectrumCard, error) {
	pool := s.Builtin()
	for _, c := range custom {
		card, err := c.Normalize()
		if err != nil {
			return nil, err
		}
		card.IsCustom = true
		pool = append(pool, card)
	}
	return pool, nil
}
