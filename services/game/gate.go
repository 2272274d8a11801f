package game

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/board"
)

// Action kinds accepted by the turn gate. They mirror the inbound
// message kinds of the wire contract.
type Action string

const (
	ActionMove     Action = "make_move"
	ActionSuggest  Action = "make_suggestion"
	ActionAccuse   Action = "make_accusation"
	ActionDisprove Action = "choose_disproving_card"
	ActionEndTurn  Action = "end_turn"
)

// ValidateAction is the turn gate: a pure decision re-evaluated on every
// inbound action. It never mutates the session; side effects are applied
// by the callers only after an accept. Rules are checked in a fixed
// order so the client always sees the most fundamental violation first.
func ValidateAction(session *redis_models.GameSession, playerID string, action Action) *RuleError {
	if session.Status != redis_models.StatusActive {
		return reject(ReasonGameOver, "the game is over")
	}

	// While a disprove prompt is outstanding the whole turn is suspended:
	// nobody may move, suggest, accuse or end the turn, no matter whose
	// turn it is. Only the prompted candidate's card choice gets through.
	if session.PendingSuggestion != nil && action != ActionDisprove {
		return reject(ReasonDisproofInProgress, "waiting for a player to disprove the current suggestion")
	}

	actor := session.PlayerByID(playerID)
	if actor == nil {
		return reject(ReasonUnknownPlayer, "player %s is not part of this session", playerID)
	}

	// The card choice has its own validation against the prompt; the
	// turn-order rules below do not apply to it.
	if action == ActionDisprove {
		return nil
	}

	current := session.CurrentPlayer()
	if current == nil || current.ID != playerID {
		return reject(ReasonNotYourTurn, "it is not your turn")
	}

	if actor.Eliminated {
		return reject(ReasonEliminated, "you have been eliminated and cannot act")
	}

	switch action {
	case ActionMove:
		if session.Turn.HasMoved {
			return reject(ReasonAlreadyMoved, "you have already moved this turn")
		}
	case ActionSuggest:
		if !board.IsRoom(actor.Location) {
			return reject(ReasonNotInRoom, "you must be in a room to make a suggestion")
		}
		if !session.Turn.HasMoved {
			return reject(ReasonMustMoveFirst, "you must move before making a suggestion")
		}
		if session.Turn.MadeSuggestion {
			return reject(ReasonAlreadySuggested, "you have already made a suggestion this turn")
		}
	case ActionAccuse:
		// No location or movement precondition: an accusation may be
		// made at any point of the actor's own turn.
	case ActionEndTurn:
		// The pending-suggestion rule above already guarantees no
		// disproof is outstanding here.
	}

	return nil
}
