package game

import (
	"fmt"
	"strings"
)

// SpectrumCard is a pair of opposing concepts printed on either end of the dial
type SpectrumCard struct {
	ID       string `json:"id" yaml:"id"`
	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	IsCustom bool   `json:"isCustom,omitempty" yaml:"-"`
}

// Normalize trims the card's fields and checks that none are blank
func (c SpectrumCard) Normalize() (SpectrumCard, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Left = strings.TrimSpace(c.Left)
	c.Right = strings.TrimSpace(c.Right)
	if c.ID == "" || c.Left == "" || c.Right == "" {
		return c, fmt.Errorf("%w: %q", ErrInvalidCard, c.ID)
	}
	return c, nil
}

// String returns the card as "Left / Right"
func (c SpectrumCard) String() string {
	return c.Left + " / " + c.Right
}
