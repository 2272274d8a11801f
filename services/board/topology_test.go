package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationKind(t *testing.T) {
	assert.Equal(t, KindRoom, LocationKind("R00"))
	assert.Equal(t, KindHallway, LocationKind("H12"))
	assert.Equal(t, KindUnknown, LocationKind("X99"))
	assert.True(t, IsRoom("R11"))
	assert.False(t, IsRoom("H01"))
}

func TestDestinationsFromCenterRoom(t *testing.T) {
	// The Billiard Room has four doors and no secret passage.
	options := Destinations("R11", nil)
	assert.Equal(t, []string{"H04", "H06", "H07", "H09"}, options)
}

func TestDestinationsFromCornerRoomIncludeSecretPassage(t *testing.T) {
	options := Destinations("R02", nil)
	assert.Contains(t, options, "R20", "Conservatory connects to Lounge by passage")

	options = Destinations("R20", nil)
	assert.Contains(t, options, "R02")
}

func TestDestinationsSkipOccupiedHallways(t *testing.T) {
	occupied := map[string]bool{"H04": true, "H06": true}
	options := Destinations("R11", occupied)
	assert.Equal(t, []string{"H07", "H09"}, options)
}

func TestDestinationsFromHallwayIgnoreOccupancy(t *testing.T) {
	// Rooms hold any number of pieces, so hallway exits never shrink.
	options := Destinations("H06", map[string]bool{"H06": true})
	assert.Equal(t, []string{"R10", "R11"}, options)
}

func TestDestinationsFromUnknownLocation(t *testing.T) {
	assert.Empty(t, Destinations("X99", nil))
}

func TestIsLegalMove(t *testing.T) {
	assert.True(t, IsLegalMove("R00", "H01", nil))
	assert.True(t, IsLegalMove("R00", "R22", nil))
	assert.False(t, IsLegalMove("R00", "H01", map[string]bool{"H01": true}))
	assert.False(t, IsLegalMove("R00", "R21", nil))
	assert.False(t, IsLegalMove("H01", "H02", nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Kitchen", DisplayName("R00"))
	assert.Equal(t, "X99", DisplayName("X99"))
}
