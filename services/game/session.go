package game

import (
	game_constants "Parlor/constants/game"
	redis_models "Parlor/models/redis"
	"fmt"
)

// Seat is a player entering a new session: identity plus chosen character.
type Seat struct {
	PlayerID  string
	Name      string
	Character string
}

// StartSession builds the authoritative session document for a lobby
// whose game is starting: starting hallways per character, hidden
// solution drawn, remaining cards dealt evenly, seating = join order.
func StartSession(lobbyID string, seats []Seat) (*redis_models.GameSession, error) {
	if len(seats) < game_constants.MinPlayers || len(seats) > game_constants.MaxPlayers {
		return nil, fmt.Errorf("session needs between %d and %d players, got %d",
			game_constants.MinPlayers, game_constants.MaxPlayers, len(seats))
	}

	solution := DrawSolution()
	hands := DealHands(len(seats), solution)

	session := &redis_models.GameSession{
		LobbyID:          lobbyID,
		CurrentTurnIndex: 0,
		Status:           redis_models.StatusActive,
		Solution:         solution,
		Rounds:           1,
	}

	for i, seat := range seats {
		start, ok := game_constants.StartingPositions[seat.Character]
		if !ok {
			return nil, fmt.Errorf("unknown character %q for player %s", seat.Character, seat.PlayerID)
		}
		known := make([]string, len(hands[i]))
		copy(known, hands[i])
		session.Players = append(session.Players, redis_models.SessionPlayer{
			ID:         seat.PlayerID,
			Name:       seat.Name,
			Character:  seat.Character,
			Location:   start,
			Hand:       hands[i],
			KnownCards: known,
		})
	}

	return session, nil
}

// AdvanceTurn moves the turn marker to the next non-eliminated player in
// seating order, wrapping, and resets the per-turn flags. The resolved
// suggestion banner is cleared so the next snapshot drops it. Exhausting
// every other player does NOT end the session: an accusation is the only
// path to a terminal state.
func AdvanceTurn(session *redis_models.GameSession) {
	n := len(session.Players)
	if n == 0 {
		return
	}

	for step := 1; step <= n; step++ {
		i := (session.CurrentTurnIndex + step) % n
		if !session.Players[i].Eliminated {
			if i <= session.CurrentTurnIndex {
				session.Rounds++
			}
			session.CurrentTurnIndex = i
			break
		}
	}

	session.Turn = redis_models.TurnState{}
	session.LastSuggestion = nil
}

// OccupiedHallways derives hallway occupancy from the players' positions.
func OccupiedHallways(session *redis_models.GameSession) map[string]bool {
	occupied := make(map[string]bool)
	for i := range session.Players {
		loc := session.Players[i].Location
		if _, ok := game_constants.HallwayDefinitions[loc]; ok {
			occupied[loc] = true
		}
	}
	return occupied
}
