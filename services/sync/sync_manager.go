package sync

import (
	postgres_models "Parlor/models/postgres"
	redis_models "Parlor/models/redis"
	"Parlor/services/redis"
	redis_utils "Parlor/services/redis/utils"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SyncManager writes the durable outcome of a finished session from
// Redis back to PostgreSQL and cleans the volatile keys up afterwards.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *gorm.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// SyncFinalResult persists the completed session's outcome: winner and
// round count on the lobby row, winner flag and final hand per player.
func (sm *SyncManager) SyncFinalResult(session *redis_models.GameSession) error {
	winner := session.PlayerByID(session.WinnerID)

	return sm.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"rounds":       session.Rounds,
			"completed_at": &now,
		}
		if winner != nil {
			updates["winner_name"] = winner.Name
		}
		if err := tx.Model(&postgres_models.GameLobby{}).
			Where("id = ?", session.LobbyID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("error updating lobby result: %v", err)
		}

		for i := range session.Players {
			p := &session.Players[i]
			hand, err := json.Marshal(p.Hand)
			if err != nil {
				return fmt.Errorf("error marshaling final hand: %v", err)
			}
			if err := tx.Model(&postgres_models.LobbyPlayer{}).
				Where("lobby_id = ? AND player_id = ?", session.LobbyID, p.ID).
				Updates(map[string]interface{}{
					"winner":     p.ID == session.WinnerID,
					"final_hand": hand,
				}).Error; err != nil {
				return fmt.Errorf("error updating player result: %v", err)
			}
		}
		return nil
	})
}

// CleanupGameData removes the volatile session keys once the lobby is
// reset or abandoned.
func (sm *SyncManager) CleanupGameData(session *redis_models.GameSession) error {
	keys := []string{redis_utils.FormatSessionKey(session.LobbyID)}
	for i := range session.Players {
		keys = append(keys, redis_utils.FormatPresenceKey(session.Players[i].ID))
	}
	if err := sm.redisClient.CleanupKeys(keys); err != nil {
		return fmt.Errorf("error cleaning up session keys: %v", err)
	}
	return nil
}
