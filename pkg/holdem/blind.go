package holdem

import "fmt"

// BlindLevel is the forced small- and big-blind bet of a room.
// It is fixed when the room is created and never escalates.
type BlindLevel struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// common blind levels
var (
	Blind10_20  = BlindLevel{SmallBlind: 10, BigBlind: 20}
	Blind25_50  = BlindLevel{SmallBlind: 25, BigBlind: 50}
	Blind50_100 = BlindLevel{SmallBlind: 50, BigBlind: 100}
)

func (b BlindLevel) String() string {
	return fmt.Sprintf("${%d}/${%d}", b.SmallBlind, b.BigBlind)
}

func (b BlindLevel) validate() error {
	if b.SmallBlind <= 0 || b.BigBlind <= b.SmallBlind {
		return fmt.Errorf("invalid blind level: %s", b)
	}

	return nil
}
