package game

import (
	redis_models "Parlor/models/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawSolutionHasOneOfEachKind(t *testing.T) {
	solution := DrawSolution()
	assert.True(t, IsKnownCard(solution.Suspect))
	assert.True(t, IsKnownCard(solution.Weapon))
	assert.True(t, IsKnownCard(solution.Room))
}

func TestDealHandsCoversDeckWithoutSolution(t *testing.T) {
	solution := redis_models.Solution{Suspect: "Mrs. White", Weapon: "Revolver", Room: "Ballroom"}

	hands := DealHands(3, solution)
	assert.Len(t, hands, 3)

	seen := map[string]int{}
	total := 0
	for _, hand := range hands {
		total += len(hand)
		for _, card := range hand {
			seen[card]++
		}
	}

	// 21 cards minus the 3 in the case file, each dealt exactly once.
	assert.Equal(t, 18, total)
	for card, count := range seen {
		assert.Equal(t, 1, count, "card %s dealt more than once", card)
	}
	assert.NotContains(t, seen, "Mrs. White")
	assert.NotContains(t, seen, "Revolver")
	assert.NotContains(t, seen, "Ballroom")
}

func TestDealHandsIsRoundRobinEven(t *testing.T) {
	solution := redis_models.Solution{Suspect: "Mrs. White", Weapon: "Revolver", Room: "Ballroom"}

	hands := DealHands(4, solution)
	// 18 cards over 4 players: the first two hands get 5, the rest 4.
	assert.Len(t, hands[0], 5)
	assert.Len(t, hands[1], 5)
	assert.Len(t, hands[2], 4)
	assert.Len(t, hands[3], 4)
}

func TestIsKnownCard(t *testing.T) {
	assert.True(t, IsKnownCard("Knife"))
	assert.True(t, IsKnownCard("Kitchen"))
	assert.True(t, IsKnownCard("Professor Plum"))
	assert.False(t, IsKnownCard("Chainsaw"))
	assert.False(t, IsKnownCard(""))
}
