package game

// Centralized static data for the game: the card sets and the board
// topology table. The engine never hardcodes adjacency; it only reads
// these lookup tables.

var Suspects = []string{
	"Miss Scarlet",
	"Colonel Mustard",
	"Mrs. White",
	"Mr. Green",
	"Mrs. Peacock",
	"Professor Plum",
}

var Weapons = []string{
	"Candlestick",
	"Knife",
	"Lead Pipe",
	"Revolver",
	"Rope",
	"Wrench",
}

var Rooms = []string{
	"Kitchen",
	"Ballroom",
	"Conservatory",
	"Dining Room",
	"Billiard Room",
	"Library",
	"Lounge",
	"Hall",
	"Study",
}

// RoomDef describes one room of the 3x3 board: the hallways its doors
// open into and, for corner rooms, the room reached by secret passage.
type RoomDef struct {
	Name          string
	Hallways      []string
	SecretPassage string // room id, empty if none
}

// HallwayDef describes a hallway connecting exactly two rooms.
type HallwayDef struct {
	Name  string
	Room1 string
	Room2 string
}

var RoomDefinitions = map[string]RoomDef{
	"R00": {Name: "Kitchen", Hallways: []string{"H01", "H03"}, SecretPassage: "R22"},
	"R01": {Name: "Ballroom", Hallways: []string{"H01", "H02", "H04"}},
	"R02": {Name: "Conservatory", Hallways: []string{"H02", "H05"}, SecretPassage: "R20"},
	"R10": {Name: "Dining Room", Hallways: []string{"H03", "H06", "H08"}},
	"R11": {Name: "Billiard Room", Hallways: []string{"H04", "H06", "H07", "H09"}},
	"R12": {Name: "Library", Hallways: []string{"H05", "H07", "H10"}},
	"R20": {Name: "Lounge", Hallways: []string{"H08", "H11"}, SecretPassage: "R02"},
	"R21": {Name: "Hall", Hallways: []string{"H09", "H11", "H12"}},
	"R22": {Name: "Study", Hallways: []string{"H10", "H12"}, SecretPassage: "R00"},
}

var HallwayDefinitions = map[string]HallwayDef{
	"H01": {Name: "H01 - Between Kitchen and Ballroom", Room1: "R00", Room2: "R01"},
	"H02": {Name: "H02 - Between Ballroom and Conservatory", Room1: "R01", Room2: "R02"},
	"H03": {Name: "H03 - Between Kitchen and Dining Room", Room1: "R00", Room2: "R10"},
	"H04": {Name: "H04 - Between Ballroom and Billiard Room", Room1: "R01", Room2: "R11"},
	"H05": {Name: "H05 - Between Conservatory and Library", Room1: "R02", Room2: "R12"},
	"H06": {Name: "H06 - Between Dining Room and Billiard Room", Room1: "R10", Room2: "R11"},
	"H07": {Name: "H07 - Between Billiard Room and Library", Room1: "R11", Room2: "R12"},
	"H08": {Name: "H08 - Between Dining Room and Lounge", Room1: "R10", Room2: "R20"},
	"H09": {Name: "H09 - Between Billiard Room and Hall", Room1: "R11", Room2: "R21"},
	"H10": {Name: "H10 - Between Library and Study", Room1: "R12", Room2: "R22"},
	"H11": {Name: "H11 - Between Lounge and Hall", Room1: "R20", Room2: "R21"},
	"H12": {Name: "H12 - Between Hall and Study", Room1: "R21", Room2: "R22"},
}

// StartingPositions maps each character to its canonical starting hallway.
var StartingPositions = map[string]string{
	"Miss Scarlet":    "H11",
	"Colonel Mustard": "H08",
	"Professor Plum":  "H10",
	"Mrs. Peacock":    "H05",
	"Mr. Green":       "H02",
	"Mrs. White":      "H01",
}

// RoomNameByID resolves a room id to its display name ("" if unknown).
func RoomNameByID(id string) string {
	if def, ok := RoomDefinitions[id]; ok {
		return def.Name
	}
	return ""
}

// RoomIDByName resolves a room display name to its id ("" if unknown).
func RoomIDByName(name string) string {
	for id, def := range RoomDefinitions {
		if def.Name == name {
			return id
		}
	}
	return ""
}

// MaxPlayers is the seat capacity of one session, one per suspect.
const MaxPlayers = 6

// MinPlayers is the minimum needed before the host may start the game.
const MinPlayers = 2
