package utils

import (
	game_constants "Parlor/constants/game"
	"Parlor/models/postgres"
	"fmt"

	"gorm.io/gorm"
)

// CheckLobbyExists fetches a lobby row or fails with a friendly error.
func CheckLobbyExists(db *gorm.DB, lobbyID string) (*postgres.GameLobby, error) {
	var lobby postgres.GameLobby
	result := db.Where("id = ?", lobbyID).First(&lobby)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("lobby not found")
		}
		return nil, result.Error
	}

	return &lobby, nil
}

// IsPlayerInLobby reports whether the player id is seated in the lobby.
func IsPlayerInLobby(db *gorm.DB, lobbyID string, playerID string) (bool, error) {
	var count int64
	err := db.Model(&postgres.LobbyPlayer{}).
		Where("lobby_id = ? AND player_id = ?", lobbyID, playerID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// LobbyPlayers lists the lobby's players in join order. Join order is
// the seating order once the game starts.
func LobbyPlayers(db *gorm.DB, lobbyID string) ([]postgres.LobbyPlayer, error) {
	var players []postgres.LobbyPlayer
	err := db.Where("lobby_id = ?", lobbyID).
		Order("joined_at ASC").
		Find(&players).Error
	return players, err
}

// AvailableCharacters returns the suspects not yet picked in the lobby.
func AvailableCharacters(players []postgres.LobbyPlayer) []string {
	taken := make(map[string]bool)
	for _, p := range players {
		if p.Character != "" {
			taken[p.Character] = true
		}
	}

	available := []string{}
	for _, c := range game_constants.Suspects {
		if !taken[c] {
			available = append(available, c)
		}
	}
	return available
}
