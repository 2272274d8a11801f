package redis

// Session lifecycle status values.
const (
	StatusActive    = "active"
	StatusWon       = "won"
	StatusAbandoned = "abandoned"
)

// TurnState tracks what the current player has already done this turn.
// Reset to the zero value exactly when the turn advances.
type TurnState struct {
	HasMoved       bool `json:"has_moved"`
	MadeSuggestion bool `json:"made_suggestion"`
}

// SessionPlayer is one seated player inside a GameSession.
// Hand is assigned once at game start and never mutated afterwards;
// KnownCards starts as a copy of Hand and only ever grows.
type SessionPlayer struct {
	ID         string   `json:"id"` // stable across reconnects
	Name       string   `json:"name"`
	Character  string   `json:"character"`
	Location   string   `json:"location"` // room or hallway id from the topology table
	Hand       []string `json:"hand"`
	KnownCards []string `json:"known_cards"`
	Eliminated bool     `json:"eliminated"`
}

// Suggestion is the active or last-resolved suggestion of a session.
// While unresolved it carries the disprove ring: the ordered candidates
// still to be considered and the matching cards of the prompted one.
type Suggestion struct {
	SuggesterID string `json:"suggester_id"`
	Suspect     string `json:"suspect"`
	Weapon      string `json:"weapon"`
	Room        string `json:"room"`

	// Disproof bookkeeping, cleared when the suggestion resolves.
	Candidates    []string `json:"candidates,omitempty"`     // player ids in prompt order
	PromptedID    string   `json:"prompted_id,omitempty"`    // candidate currently asked
	MatchingCards []string `json:"matching_cards,omitempty"` // prompted candidate's matches

	// Resolution, set exactly once.
	Resolved     bool   `json:"resolved"`
	DisproverID  string `json:"disprover_id,omitempty"`
	RevealedCard string `json:"revealed_card,omitempty"` // visible to suggester and disprover only
}

// Solution is the hidden case file. It never appears in snapshots.
type Solution struct {
	Suspect string `json:"suspect"`
	Weapon  string `json:"weapon"`
	Room    string `json:"room"`
}

// GameSession is the authoritative state of one running game. It is
// stored as a single JSON document in Redis and mutated only by the
// socket.io game handlers while holding the per-session lock.
type GameSession struct {
	LobbyID           string          `json:"lobby_id"`
	Players           []SessionPlayer `json:"players"` // seating order
	CurrentTurnIndex  int             `json:"current_turn_index"`
	Turn              TurnState       `json:"turn_state"`
	PendingSuggestion *Suggestion     `json:"pending_suggestion,omitempty"`
	LastSuggestion    *Suggestion     `json:"last_suggestion,omitempty"`
	Solution          Solution        `json:"solution"`
	Status            string          `json:"status"`
	WinnerID          string          `json:"winner_id,omitempty"`
	Rounds            int             `json:"rounds"`
}

// PlayerByID returns the seated player with the given id, nil if absent.
func (s *GameSession) PlayerByID(id string) *SessionPlayer {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, nil for an empty session.
func (s *GameSession) CurrentPlayer() *SessionPlayer {
	if len(s.Players) == 0 || s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentTurnIndex]
}

// HasCard reports whether the player holds the named card.
func (p *SessionPlayer) HasCard(card string) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// Knows reports whether the card is already in the player's known set.
func (p *SessionPlayer) Knows(card string) bool {
	for _, c := range p.KnownCards {
		if c == card {
			return true
		}
	}
	return false
}

// Learn appends a card to KnownCards if not already present (append-only).
func (p *SessionPlayer) Learn(card string) {
	if !p.Knows(card) {
		p.KnownCards = append(p.KnownCards, card)
	}
}
