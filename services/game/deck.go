package game

import (
	game_constants "Parlor/constants/game"
	redis_models "Parlor/models/redis"
	"math/rand"
)

// DrawSolution picks the hidden case file: one suspect, one weapon and
// one room, removed from the deck before dealing.
func DrawSolution() redis_models.Solution {
	return redis_models.Solution{
		Suspect: game_constants.Suspects[rand.Intn(len(game_constants.Suspects))],
		Weapon:  game_constants.Weapons[rand.Intn(len(game_constants.Weapons))],
		Room:    game_constants.Rooms[rand.Intn(len(game_constants.Rooms))],
	}
}

// DealHands shuffles the deck minus the solution cards and deals it
// evenly, round-robin, over numPlayers hands.
func DealHands(numPlayers int, solution redis_models.Solution) [][]string {
	deck := []string{}
	for _, c := range game_constants.Suspects {
		if c != solution.Suspect {
			deck = append(deck, c)
		}
	}
	for _, c := range game_constants.Weapons {
		if c != solution.Weapon {
			deck = append(deck, c)
		}
	}
	for _, c := range game_constants.Rooms {
		if c != solution.Room {
			deck = append(deck, c)
		}
	}

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	hands := make([][]string, numPlayers)
	for i := range hands {
		hands[i] = []string{}
	}
	for i, card := range deck {
		hands[i%numPlayers] = append(hands[i%numPlayers], card)
	}
	return hands
}

// IsKnownCard reports whether a name is a card of the game at all.
func IsKnownCard(name string) bool {
	for _, c := range game_constants.Suspects {
		if c == name {
			return true
		}
	}
	for _, c := range game_constants.Weapons {
		if c == name {
			return true
		}
	}
	for _, c := range game_constants.Rooms {
		if c == name {
			return true
		}
	}
	return false
}
