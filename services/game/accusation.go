package game

import (
	redis_models "Parlor/models/redis"
)

// AccusationResult is the synchronous resolution of an accusation.
type AccusationResult struct {
	AccuserID   string
	AccuserName string
	Correct     bool
	// Set only on a correct accusation; on a wrong guess the solution
	// stays hidden and the accuser is eliminated instead.
	Solution *redis_models.Solution
}

// ResolveAccusation checks the accused triple against the hidden case
// file. An exact match on all three ends the session with a winner; any
// mismatch eliminates the accuser and the turn passes on. Elimination
// of everyone else never auto-declares a winner.
func ResolveAccusation(session *redis_models.GameSession, accuserID, suspect, weapon, room string) (*AccusationResult, *RuleError) {
	accuser := session.PlayerByID(accuserID)
	if accuser == nil {
		return nil, reject(ReasonUnknownPlayer, "player %s is not part of this session", accuserID)
	}

	result := &AccusationResult{AccuserID: accuser.ID, AccuserName: accuser.Name}

	solution := session.Solution
	if suspect == solution.Suspect && weapon == solution.Weapon && room == solution.Room {
		result.Correct = true
		result.Solution = &solution
		session.Status = redis_models.StatusWon
		session.WinnerID = accuser.ID
		return result, nil
	}

	accuser.Eliminated = true
	if current := session.CurrentPlayer(); current != nil && current.ID == accuserID {
		AdvanceTurn(session)
	}
	return result, nil
}
