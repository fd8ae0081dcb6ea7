package poker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardroom-server/pkg/deck"
)

func analyze(cards string) *HandAnalyzer {
	return NewHandAnalyzer(5, deck.CardsFromString(cards))
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	a := assert.New(t)

	runTest := func(cards string, expected Hand) {
		t.Helper()
		a.Equal(expected, analyze(cards).GetHand(), cards)
	}

	runTest("2c,3d,4h,6s,9c", HighCard)
	runTest("2c,2d,4h,6s,9c", OnePair)
	runTest("2c,2d,6h,6s,9c", TwoPair)
	runTest("2c,2d,2h,6s,9c", ThreeOfAKind)
	runTest("2c,3d,4h,5s,6c", Straight)
	runTest("14c,2d,3h,4s,5c", Straight)
	runTest("2h,5h,9h,11h,13h", Flush)
	runTest("2c,2d,2h,9s,9c", FullHouse)
	runTest("2c,2d,2h,2s,9c", FourOfAKind)
	runTest("2c,3c,4c,5c,6c", StraightFlush)
	runTest("14c,2c,3c,4c,5c", StraightFlush)
	runTest("10h,11h,12h,13h,14h", RoyalFlush)

	// seven-card combinations
	runTest("2c,3d,4h,6s,9c,10d,12h", HighCard)
	runTest("10h,11h,12h,13h,14h,14c,14d", RoyalFlush)
	runTest("2c,3c,4c,5c,6c,14d,14h", StraightFlush)
	runTest("2c,2d,2h,9s,9c,9h,14d", FullHouse)
	runTest("2h,5h,9h,11h,13h,13c,13d", Flush)
	runTest("2c,3d,4h,5s,6c,6d,6h", Straight)
}

func TestHandAnalyzer_GetStrength(t *testing.T) {
	a := assert.New(t)

	// each hand must be strictly stronger than the previous one
	hands := []string{
		"2c,3d,4h,6s,9c",     // nine high
		"2c,3d,4h,6s,10c",    // ten high
		"2c,2d,4h,6s,9c",     // pair of twos
		"2c,2d,4h,6s,13c",    // pair of twos, better kicker
		"3c,3d,4h,6s,9c",     // pair of threes
		"3c,3d,6h,6s,9c",     // two pair
		"3c,3d,6h,6s,13c",    // two pair, better kicker
		"3c,3d,3h,6s,9c",     // trips
		"2c,3d,4h,5s,6c",     // straight
		"3c,4d,5h,6s,7c",     // better straight
		"2h,5h,9h,11h,13h",   // flush
		"2h,5h,9h,12h,13h",   // better flush
		"3c,3d,3h,9s,9c",     // full house
		"3c,3d,3h,3s,9c",     // quads
		"2c,3c,4c,5c,6c",     // straight flush
		"10h,11h,12h,13h,14h", // royal flush
	}

	prevStrength := 0
	prevHand := ""
	for _, cards := range hands {
		strength := analyze(cards).GetStrength()
		a.Greater(strength, prevStrength, fmt.Sprintf("%s beats %s", cards, prevHand))
		prevStrength = strength
		prevHand = cards
	}
}

func TestHandAnalyzer_GetStrength_exactTies(t *testing.T) {
	a := assert.New(t)

	// an ace-low straight ties another ace-low straight in different suits
	a.Equal(analyze("14c,2d,3h,4s,5c").GetStrength(), analyze("14d,2c,3s,4h,5d").GetStrength())

	// a board-made royal flush ties regardless of the hole cards
	board := "10h,11h,12h,13h,14h"
	a.Equal(
		analyze(board+",3h,6d").GetStrength(),
		analyze(board+",3s,6c").GetStrength(),
	)

	// kickers beyond the best five cards do not matter
	a.Equal(
		analyze("9c,9d,14h,13s,12c,2d,3h").GetStrength(),
		analyze("9h,9s,14d,13c,12h,4d,5s").GetStrength(),
	)
}

func TestHandAnalyzer_getters(t *testing.T) {
	a := assert.New(t)

	h := analyze("2c,2d,2h,9s,9c")
	fh, ok := h.GetFullHouse()
	a.True(ok)
	a.Equal([]int{2, 9}, fh)

	trips, ok := h.GetThreeOfAKind()
	a.True(ok)
	a.Equal(2, trips)

	h = analyze("3c,3d,6h,6s,9c")
	tp, ok := h.GetTwoPair()
	a.True(ok)
	a.Equal([]int{6, 3}, tp)

	h = analyze("2h,5h,9h,11h,13h")
	f, ok := h.GetFlush()
	a.True(ok)
	a.Equal([]int{13, 11, 9, 5, 2}, f)

	h = analyze("2c,3d,4h,6s,9c")
	hc, ok := h.GetHighCard()
	a.True(ok)
	a.Equal([]int{9, 6, 4, 3, 2}, hc)

	_, ok = h.GetStraight()
	a.False(ok)
	_, ok = h.GetStraightFlush()
	a.False(ok)
	a.False(h.GetRoyalFlush())

	s, ok := analyze("14c,2d,3h,4s,5c").GetStraight()
	a.True(ok)
	a.Equal(5, s)

	s, ok = analyze("10c,11d,12h,13s,14c").GetStraight()
	a.True(ok)
	a.Equal(14, s)

	q, ok := analyze("2c,2d,2h,2s,9c").GetFourOfAKind()
	a.True(ok)
	a.Equal(2, q)
}
