package board

import (
	game_constants "Parlor/constants/game"
	"sort"
)

// Location kinds on the board.
const (
	KindRoom    = "room"
	KindHallway = "hallway"
	KindUnknown = "unknown"
)

// LocationKind classifies a location id using the topology table.
func LocationKind(id string) string {
	if _, ok := game_constants.RoomDefinitions[id]; ok {
		return KindRoom
	}
	if _, ok := game_constants.HallwayDefinitions[id]; ok {
		return KindHallway
	}
	return KindUnknown
}

// IsRoom reports whether the location id names a room.
func IsRoom(id string) bool {
	return LocationKind(id) == KindRoom
}

// Destinations computes the legal destination set from a location:
//   - from a room: every adjacent unoccupied hallway, plus the secret
//     passage room for corner rooms
//   - from a hallway: both connected rooms (rooms hold any number of pieces)
//
// occupied holds the hallway ids currently holding a player's piece.
// The result is sorted so snapshots stay deterministic.
func Destinations(from string, occupied map[string]bool) []string {
	options := []string{}

	if def, ok := game_constants.RoomDefinitions[from]; ok {
		for _, h := range def.Hallways {
			if !occupied[h] {
				options = append(options, h)
			}
		}
		if def.SecretPassage != "" {
			options = append(options, def.SecretPassage)
		}
	} else if def, ok := game_constants.HallwayDefinitions[from]; ok {
		options = append(options, def.Room1, def.Room2)
	}

	sort.Strings(options)
	return options
}

// IsLegalMove reports whether to is a member of the destination set of from.
func IsLegalMove(from, to string, occupied map[string]bool) bool {
	for _, option := range Destinations(from, occupied) {
		if option == to {
			return true
		}
	}
	return false
}

// DisplayName resolves any location id to its display name for broadcasts.
func DisplayName(id string) string {
	if def, ok := game_constants.RoomDefinitions[id]; ok {
		return def.Name
	}
	if def, ok := game_constants.HallwayDefinitions[id]; ok {
		return def.Name
	}
	return id
}
