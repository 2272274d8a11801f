package game

import (
	redis_models "Parlor/models/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectAccusationWinsTheGame(t *testing.T) {
	session := testSession()

	result, ruleErr := ResolveAccusation(session, "p-alice", "Mrs. White", "Revolver", "Ballroom")
	assert.Nil(t, ruleErr)
	assert.True(t, result.Correct)
	assert.NotNil(t, result.Solution)
	assert.Equal(t, "Mrs. White", result.Solution.Suspect)

	assert.Equal(t, redis_models.StatusWon, session.Status)
	assert.Equal(t, "p-alice", session.WinnerID)
}

func TestWrongAccusationEliminatesAndPassesTurn(t *testing.T) {
	session := testSession()

	result, ruleErr := ResolveAccusation(session, "p-alice", "Mrs. White", "Knife", "Ballroom")
	assert.Nil(t, ruleErr)
	assert.False(t, result.Correct)
	assert.Nil(t, result.Solution, "the case file stays hidden on a miss")

	assert.True(t, session.Players[0].Eliminated)
	assert.Equal(t, redis_models.StatusActive, session.Status)
	assert.Equal(t, 1, session.CurrentTurnIndex, "turn passes to Bob")
}

func TestWrongAccusationOffTurnKeepsTurnMarker(t *testing.T) {
	// The gate normally blocks off-turn accusations; the resolver itself
	// must still not touch the turn marker if the accuser was not the
	// current player.
	session := testSession()

	_, ruleErr := ResolveAccusation(session, "p-carol", "Mrs. White", "Knife", "Ballroom")
	assert.Nil(t, ruleErr)
	assert.True(t, session.Players[2].Eliminated)
	assert.Equal(t, 0, session.CurrentTurnIndex)
}

func TestEliminatingEveryoneDoesNotAutoWin(t *testing.T) {
	session := testSession()
	session.Players[1].Eliminated = true
	session.Players[2].Eliminated = true

	// Alice, last one standing, misses too. The session stays active
	// with no winner: only a correct accusation is terminal.
	_, ruleErr := ResolveAccusation(session, "p-alice", "Mrs. White", "Knife", "Ballroom")
	assert.Nil(t, ruleErr)
	assert.Equal(t, redis_models.StatusActive, session.Status)
	assert.Empty(t, session.WinnerID)
}

func TestAccusationUnknownPlayer(t *testing.T) {
	session := testSession()

	_, ruleErr := ResolveAccusation(session, "p-nobody", "Mrs. White", "Revolver", "Ballroom")
	assert.NotNil(t, ruleErr)
	assert.Equal(t, ReasonUnknownPlayer, ruleErr.Reason)
}
