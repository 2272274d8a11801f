package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveOptionsFromCornerRoom(t *testing.T) {
	// Alice sits in the Kitchen. H01 and H03 are free, and the secret
	// passage leads to the Study.
	session := testSession()
	session.Players[1].Location = "H06"
	session.Players[2].Location = "H07"

	options := MoveOptions(session, "p-alice")
	assert.Equal(t, []string{"H01", "H03", "R22"}, options)
}

func TestMoveOptionsExcludeOccupiedHallways(t *testing.T) {
	session := testSession()
	session.Players[1].Location = "H01"

	options := MoveOptions(session, "p-alice")
	assert.NotContains(t, options, "H01")
	assert.Contains(t, options, "H03")
	assert.Contains(t, options, "R22")
}

func TestMoveOptionsFromHallway(t *testing.T) {
	// Bob stands in H08, between Dining Room and Lounge. Rooms are
	// always enterable no matter how crowded.
	session := testSession()

	options := MoveOptions(session, "p-bob")
	assert.Equal(t, []string{"R10", "R20"}, options)
}

func TestApplyMoveSetsFlagAndPosition(t *testing.T) {
	session := testSession()

	ruleErr := ApplyMove(session, "p-alice", "H03")
	assert.Nil(t, ruleErr)
	assert.Equal(t, "H03", session.Players[0].Location)
	assert.True(t, session.Turn.HasMoved)
}

func TestApplyMoveRejectsIllegalDestination(t *testing.T) {
	session := testSession()

	ruleErr := ApplyMove(session, "p-alice", "R21")
	assert.NotNil(t, ruleErr)
	assert.Equal(t, ReasonIllegalDestination, ruleErr.Reason)
	assert.Equal(t, "R00", session.Players[0].Location, "position unchanged")
	assert.False(t, session.Turn.HasMoved)
}

func TestApplyMoveRejectsOccupiedHallway(t *testing.T) {
	session := testSession()
	session.Players[1].Location = "H01"

	ruleErr := ApplyMove(session, "p-alice", "H01")
	assert.NotNil(t, ruleErr)
	assert.Equal(t, ReasonIllegalDestination, ruleErr.Reason)
}

func TestSecretPassageMove(t *testing.T) {
	session := testSession()

	ruleErr := ApplyMove(session, "p-alice", "R22")
	assert.Nil(t, ruleErr)
	assert.Equal(t, "R22", session.Players[0].Location)
}
