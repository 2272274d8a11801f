package game

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func playerEntry(t *testing.T, snapshot map[string]interface{}, id string) map[string]interface{} {
	t.Helper()
	players, ok := snapshot["players"].([]map[string]interface{})
	assert.True(t, ok)
	for _, p := range players {
		if p["id"] == id {
			return p
		}
	}
	t.Fatalf("player %s not in snapshot", id)
	return nil
}

func TestSnapshotShowsOwnHandOnly(t *testing.T) {
	session := testSession()
	snapshot := SnapshotFor(session, "p-alice")

	own := playerEntry(t, snapshot, "p-alice")
	assert.Equal(t, []string{"Rope", "Library"}, own["hand"])
	assert.Equal(t, []string{"Rope", "Library"}, own["known_cards"])

	other := playerEntry(t, snapshot, "p-bob")
	assert.NotContains(t, other, "hand")
	assert.NotContains(t, other, "known_cards")
}

func TestSnapshotNeverContainsSolution(t *testing.T) {
	session := testSession()
	snapshot := SnapshotFor(session, "p-alice")
	assert.NotContains(t, snapshot, "solution")
}

func TestSnapshotMarksCurrentTurn(t *testing.T) {
	session := testSession()
	snapshot := SnapshotFor(session, "p-bob")

	assert.Equal(t, true, playerEntry(t, snapshot, "p-alice")["is_current_turn"])
	assert.Equal(t, false, playerEntry(t, snapshot, "p-bob")["is_current_turn"])

	current, ok := snapshot["current_player"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "p-alice", current["id"])
}

func TestSnapshotDisproofPendingIsNonRevealing(t *testing.T) {
	session := testSession()
	session.Turn.HasMoved = true
	_, ruleErr := BeginSuggestion(session, "p-alice", "Mrs. White", "Knife", "Kitchen")
	assert.Nil(t, ruleErr)

	// Even the prompted player's public view carries only who everyone
	// is waiting on, never the matching cards.
	snapshot := SnapshotFor(session, "p-bob")
	pending, ok := snapshot["disproof_pending"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "p-carol", pending["waiting_on_id"])
	assert.NotContains(t, pending, "matching_cards")
}

func TestSnapshotRevealedCardVisibilityIsScoped(t *testing.T) {
	session := testSession()
	session.Turn.HasMoved = true
	_, ruleErr := BeginSuggestion(session, "p-alice", "Mrs. White", "Knife", "Kitchen")
	assert.Nil(t, ruleErr)
	_, ruleErr = ResolveDisproof(session, "p-carol", "Knife")
	assert.Nil(t, ruleErr)

	forSuggester := SnapshotFor(session, "p-alice")["last_suggestion"].(map[string]interface{})
	assert.Equal(t, "Knife", forSuggester["revealed_card"])

	forDisprover := SnapshotFor(session, "p-carol")["last_suggestion"].(map[string]interface{})
	assert.Equal(t, "Knife", forDisprover["revealed_card"])

	forBystander := SnapshotFor(session, "p-bob")["last_suggestion"].(map[string]interface{})
	assert.NotContains(t, forBystander, "revealed_card")
	assert.Equal(t, true, forBystander["disproved"])
	assert.Equal(t, "Carol", forBystander["disprover_name"])
}

func TestSnapshotIsDeterministic(t *testing.T) {
	// Two renders of the same document must match exactly: this is what
	// makes resync equivalent to having stayed connected.
	session := testSession()
	session.Turn.HasMoved = true

	first := SnapshotFor(session, "p-alice")
	second := SnapshotFor(session, "p-alice")
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestSnapshotShowsWinner(t *testing.T) {
	session := testSession()
	_, ruleErr := ResolveAccusation(session, "p-alice", "Mrs. White", "Revolver", "Ballroom")
	assert.Nil(t, ruleErr)

	snapshot := SnapshotFor(session, "p-bob")
	winner, ok := snapshot["winner"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "p-alice", winner["id"])
	assert.NotContains(t, snapshot, "current_player")
}
