package game

// Deck is a shuffled draw pile that reshuffles itself when exhausted
type Deck struct {
	cards  []SpectrumCard
	cursor int
	src    Source
}

// NewDeck shuffles a copy of cards into a fresh deck
func NewDeck(cards []SpectrumCard, src Source) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	d := &Deck{
		cards: make([]SpectrumCard, len(cards)),
		src:   src,
	}
	copy(d.cards, cards)
	d.shuffle()
	return d, nil
}

// Draw returns the next card, reshuffling once the cursor reaches the end
func (d *Deck) Draw() SpectrumCard {
	if d.cursor >= len(d.cards) {
		d.shuffle()
	}
	card := d.cards[d.cursor]
	d.cursor++
	return card
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining returns how many cards are left before the next reshuffle
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

func (d *Deck) shuffle() {
	d.src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.cursor = 0
}
