package game

import (
	game_constants "Parlor/constants/game"
	redis_models "Parlor/models/redis"
)

// DisprovePrompt tells the handler layer who to prompt privately and
// with which matching cards. MatchingCards is the exact intersection of
// the candidate's hand with the suggested triple, never a guess.
type DisprovePrompt struct {
	DisproverID   string
	DisproverName string
	MatchingCards []string
}

// SuggestionOutcome is the immediate result of an accepted suggestion:
// either a prompt for exactly one candidate, or an instant no-disprove
// resolution when nobody downstream holds a matching card.
type SuggestionOutcome struct {
	Suggestion *redis_models.Suggestion
	Prompt     *DisprovePrompt // nil means resolved with no disprover
}

// DisproofResult is the resolution of a prompted card choice. Card is
// revealed to the suggester only; broadcasts carry just the names.
type DisproofResult struct {
	SuggesterID   string
	SuggesterName string
	DisproverID   string
	DisproverName string
	Card          string
}

func matchingCards(player *redis_models.SessionPlayer, s *redis_models.Suggestion) []string {
	matches := []string{}
	for _, c := range player.Hand {
		if c == s.Suspect || c == s.Weapon || c == s.Room {
			matches = append(matches, c)
		}
	}
	return matches
}

// BeginSuggestion creates the suggestion, virtually relocates the named
// suspect's token into the room and opens the disproof sub-protocol.
// Callers must have passed the turn gate; this validates the payload
// itself (named cards exist, room equals the suggester's current room).
func BeginSuggestion(session *redis_models.GameSession, suggesterID, suspect, weapon, room string) (*SuggestionOutcome, *RuleError) {
	suggester := session.PlayerByID(suggesterID)
	if suggester == nil {
		return nil, reject(ReasonUnknownPlayer, "player %s is not part of this session", suggesterID)
	}

	currentRoom := game_constants.RoomNameByID(suggester.Location)
	if currentRoom == "" {
		return nil, reject(ReasonNotInRoom, "you must be in a room to make a suggestion")
	}
	if room != "" && room != currentRoom {
		return nil, reject(ReasonNotInRoom, "you can only suggest the room you are in (%s)", currentRoom)
	}
	if !IsKnownCard(suspect) || !IsKnownCard(weapon) {
		return nil, reject(ReasonUnknownCard, "unknown suspect or weapon")
	}

	suggestion := &redis_models.Suggestion{
		SuggesterID: suggesterID,
		Suspect:     suspect,
		Weapon:      weapon,
		Room:        currentRoom,
	}

	// Rule of the source game: the named suspect's piece is moved into
	// the suggested room. An eliminated player's piece is retired from
	// the board and never dragged around.
	roomID := game_constants.RoomIDByName(currentRoom)
	for i := range session.Players {
		if session.Players[i].Character == suspect && !session.Players[i].Eliminated {
			session.Players[i].Location = roomID
		}
	}

	session.Turn.MadeSuggestion = true

	// Candidate ring: every other non-eliminated player in turn order
	// starting right after the suggester, wrapping. Eliminated players
	// are skipped even if their dead hand holds a matching card.
	n := len(session.Players)
	start := 0
	for i := range session.Players {
		if session.Players[i].ID == suggesterID {
			start = i
			break
		}
	}
	for step := 1; step < n; step++ {
		candidate := &session.Players[(start+step)%n]
		if candidate.Eliminated {
			continue
		}
		suggestion.Candidates = append(suggestion.Candidates, candidate.ID)
	}

	// Prompt the first candidate holding at least one matching card;
	// candidates with nothing to show are skipped server-side, they are
	// never asked.
	for _, candidateID := range suggestion.Candidates {
		candidate := session.PlayerByID(candidateID)
		matches := matchingCards(candidate, suggestion)
		if len(matches) == 0 {
			continue
		}
		suggestion.PromptedID = candidateID
		suggestion.MatchingCards = matches
		session.PendingSuggestion = suggestion
		return &SuggestionOutcome{
			Suggestion: suggestion,
			Prompt: &DisprovePrompt{
				DisproverID:   candidateID,
				DisproverName: candidate.Name,
				MatchingCards: matches,
			},
		}, nil
	}

	// Nobody can disprove: resolve immediately, end-turn is unblocked.
	suggestion.Candidates = nil
	suggestion.Resolved = true
	session.PendingSuggestion = nil
	session.LastSuggestion = suggestion
	return &SuggestionOutcome{Suggestion: suggestion}, nil
}

// ResolveDisproof processes the prompted candidate's card choice. The
// responder must be the expected candidate and the card a member of the
// candidate's own matching set; anything else is rejected without any
// state change. On success the card is appended to the suggester's
// known set and the sub-protocol resolves, unblocking end-turn.
func ResolveDisproof(session *redis_models.GameSession, responderID, cardName string) (*DisproofResult, *RuleError) {
	suggestion := session.PendingSuggestion
	if suggestion == nil {
		return nil, reject(ReasonNoPendingSuggestion, "there is no suggestion waiting to be disproved")
	}
	if responderID != suggestion.PromptedID {
		return nil, reject(ReasonNotYourPrompt, "you were not asked to disprove this suggestion")
	}

	valid := false
	for _, c := range suggestion.MatchingCards {
		if c == cardName {
			valid = true
			break
		}
	}
	if !valid {
		return nil, reject(ReasonCardNotMatching, "%s is not one of your matching cards", cardName)
	}

	suggester := session.PlayerByID(suggestion.SuggesterID)
	disprover := session.PlayerByID(responderID)
	suggester.Learn(cardName)

	suggestion.DisproverID = responderID
	suggestion.RevealedCard = cardName
	suggestion.Resolved = true
	suggestion.Candidates = nil
	suggestion.PromptedID = ""
	suggestion.MatchingCards = nil

	session.LastSuggestion = suggestion
	session.PendingSuggestion = nil

	return &DisproofResult{
		SuggesterID:   suggester.ID,
		SuggesterName: suggester.Name,
		DisproverID:   disprover.ID,
		DisproverName: disprover.Name,
		Card:          cardName,
	}, nil
}
