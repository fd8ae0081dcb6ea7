package holdem

import "cardroom-server/pkg/deck"

// Board holds the shared community cards.
// It grows 0 → 3 → 4 → 5 across the streets and never shrinks.
type Board struct {
	cards deck.Hand
}

// Cards returns a copy of the community cards dealt so far
func (b *Board) Cards() deck.Hand {
	return b.cards.Clone()
}

// CardCount returns the number of community cards dealt so far
func (b *Board) CardCount() int {
	return len(b.cards)
}

func (b *Board) String() string {
	return b.cards.String()
}

func (b *Board) add(cards ...*deck.Card) {
	for _, card := range cards {
		b.cards.AddCard(card)
	}
}
