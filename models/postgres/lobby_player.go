package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'LobbyPlayer' is the durable record of one player seated in a lobby.
 * TokenHash is the SHA-256 of the reconnect token handed to the client;
 * the raw token itself is only ever held by the client and by Redis.
 */
type LobbyPlayer struct {
	// NOTE: composite primary key definition
	LobbyID   string `gorm:"primaryKey;size:50;not null"`
	PlayerID  string `gorm:"primaryKey;size:64;not null;index"`
	Name      string `gorm:"size:50;not null"`
	Character string `gorm:"size:50"`
	TokenHash string `gorm:"size:64;uniqueIndex"`
	Winner    bool   `gorm:"default:false"`
	// Final hand written back when the session completes, for the record.
	FinalHand datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	JoinedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the lobby
	GameLobby GameLobby `gorm:"foreignKey:LobbyID"`
}
