package postgres

import (
	"math/rand"
	"time"

	"gorm.io/gorm"
)

/*
 * 'GameLobby' is the durable record of one game lobby. The in-flight
 * session state lives in Redis; this row keeps what must survive the
 * session: host, lifecycle flags and the final result.
 */
type GameLobby struct {
	ID           string    `gorm:"primaryKey;size:50;not null"`
	HostName     string    `gorm:"size:50;index:idx_game_lobbies_host"`
	PasscodeHash string    `gorm:"size:255"` // empty for open lobbies
	GameHasBegun bool      `gorm:"default:false;index:idx_game_lobbies_active"`
	WinnerName   string    `gorm:"size:50"`
	Rounds       int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	CompletedAt  *time.Time

	// Relationship with players seated in the lobby
	LobbyPlayers []*LobbyPlayer `gorm:"foreignKey:LobbyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Random lobby id generation
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateLobbyID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// BeforeCreate assigns a short unique lobby id, retrying on collision.
func (l *GameLobby) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID != "" {
		return nil
	}
	for {
		newID := generateLobbyID(4)
		var existing GameLobby
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				l.ID = newID
				return nil
			}
			return err
		}
	}
}
