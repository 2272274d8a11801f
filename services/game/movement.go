package game

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/board"
)

// MoveOptions computes the legal destination set for a player from the
// topology table and current hallway occupancy. Offered to the client
// when make_move arrives without a destination.
func MoveOptions(session *redis_models.GameSession, playerID string) []string {
	player := session.PlayerByID(playerID)
	if player == nil {
		return nil
	}
	return board.Destinations(player.Location, OccupiedHallways(session))
}

// ApplyMove validates the destination against the current option set and
// mutates the player's position. Callers must have passed the turn gate
// first; this only adds the destination-membership check.
func ApplyMove(session *redis_models.GameSession, playerID, destination string) *RuleError {
	player := session.PlayerByID(playerID)
	if player == nil {
		return reject(ReasonUnknownPlayer, "player %s is not part of this session", playerID)
	}

	if !board.IsLegalMove(player.Location, destination, OccupiedHallways(session)) {
		return reject(ReasonIllegalDestination, "you cannot move from %s to %s",
			board.DisplayName(player.Location), board.DisplayName(destination))
	}

	player.Location = destination
	session.Turn.HasMoved = true
	return nil
}
