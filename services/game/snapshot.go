package game

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/board"
)

// SnapshotFor renders the full authoritative state as seen by one
// viewer. Everything is rebuilt from the session document on every call,
// so a resync after reconnect produces exactly what a continuously
// connected client would hold. Hands and revealed cards are filtered:
// a viewer only ever sees their own known_cards, and a revealed card is
// only included for the suggester and the disprover.
func SnapshotFor(session *redis_models.GameSession, viewerID string) map[string]interface{} {
	players := make([]map[string]interface{}, 0, len(session.Players))
	for i := range session.Players {
		p := &session.Players[i]
		entry := map[string]interface{}{
			"id":              p.ID,
			"name":            p.Name,
			"character":       p.Character,
			"position":        p.Location,
			"position_name":   board.DisplayName(p.Location),
			"location_type":   board.LocationKind(p.Location),
			"eliminated":      p.Eliminated,
			"is_current_turn": session.Status == redis_models.StatusActive && i == session.CurrentTurnIndex,
		}
		if p.ID == viewerID {
			entry["known_cards"] = p.KnownCards
			entry["hand"] = p.Hand
		}
		players = append(players, entry)
	}

	snapshot := map[string]interface{}{
		"lobby_id": session.LobbyID,
		"status":   session.Status,
		"rounds":   session.Rounds,
		"players":  players,
		"turn_state": map[string]interface{}{
			"has_moved":       session.Turn.HasMoved,
			"made_suggestion": session.Turn.MadeSuggestion,
		},
	}

	if current := session.CurrentPlayer(); current != nil && session.Status == redis_models.StatusActive {
		snapshot["current_player"] = map[string]interface{}{
			"id":        current.ID,
			"name":      current.Name,
			"character": current.Character,
		}
	}

	if session.Status == redis_models.StatusWon {
		if winner := session.PlayerByID(session.WinnerID); winner != nil {
			snapshot["winner"] = map[string]interface{}{
				"id":        winner.ID,
				"name":      winner.Name,
				"character": winner.Character,
			}
		}
	}

	if pending := session.PendingSuggestion; pending != nil {
		waiting := session.PlayerByID(pending.PromptedID)
		entry := map[string]interface{}{
			"suggester_name": playerName(session, pending.SuggesterID),
			"suspect":        pending.Suspect,
			"weapon":         pending.Weapon,
			"room":           pending.Room,
		}
		if waiting != nil {
			entry["waiting_on_id"] = waiting.ID
			entry["waiting_on_name"] = waiting.Name
		}
		snapshot["disproof_pending"] = entry
	}

	if last := session.LastSuggestion; last != nil {
		entry := map[string]interface{}{
			"suggester_name": playerName(session, last.SuggesterID),
			"suspect":        last.Suspect,
			"weapon":         last.Weapon,
			"room":           last.Room,
			"disproved":      last.DisproverID != "",
		}
		if last.DisproverID != "" {
			entry["disprover_name"] = playerName(session, last.DisproverID)
			// The card itself stays between the two parties involved.
			if viewerID == last.SuggesterID || viewerID == last.DisproverID {
				entry["revealed_card"] = last.RevealedCard
			}
		}
		snapshot["last_suggestion"] = entry
	}

	return snapshot
}

func playerName(session *redis_models.GameSession, id string) string {
	if p := session.PlayerByID(id); p != nil {
		return p.Name
	}
	return ""
}
