package handlers

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/game"
	"Parlor/services/redis"
	socketio_types "Parlor/services/socket_io/types"
	"Parlor/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleResync answers a reconnecting (or freshly attached) client with
// the full authoritative snapshot, never a diff, so the request is
// idempotent and order-independent. A connection that went through a
// reconnect is assumed to remember nothing.
func HandleResync(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[RESYNC] Player %s requesting resync for lobby %s",
			identity.PlayerID, identity.LobbyID)

		// Rejoin the lobby room; a new socket starts in no rooms.
		client.Join(socket.Room(identity.LobbyID))

		session, err := redisClient.GetGameSession(identity.LobbyID)
		if err != nil {
			// No running session: the lobby is still gathering. Send the
			// roster instead so the client can render the lobby screen.
			log.Printf("[RESYNC] No session for lobby %s, sending lobby roster", identity.LobbyID)
			players, dbErr := utils.LobbyPlayers(db, identity.LobbyID)
			if dbErr != nil {
				log.Printf("[RESYNC-ERROR] Error listing players: %v", dbErr)
				client.Emit("error", gin.H{"error": "Error loading lobby state"})
				return
			}
			roster := make([]gin.H, 0, len(players))
			for _, p := range players {
				roster = append(roster, gin.H{
					"id":        p.PlayerID,
					"name":      p.Name,
					"character": p.Character,
				})
			}
			client.Emit("lobby_update", gin.H{
				"type":                 "lobby_update",
				"lobby_id":             identity.LobbyID,
				"players":              roster,
				"count":                len(players),
				"available_characters": utils.AvailableCharacters(players),
			})
			return
		}

		// If the disprove prompt is still outstanding for this player,
		// re-deliver it: the prompt has no timeout and survives any
		// number of reconnects.
		if pending := session.PendingSuggestion; pending != nil && pending.PromptedID == identity.PlayerID {
			client.Emit("disprove_prompt", gin.H{
				"type":           "disprove_prompt",
				"disprover_id":   identity.PlayerID,
				"disprover_name": identity.Name,
				"suggester_name": suggesterNameOf(session),
				"matching_cards": pending.MatchingCards,
			})
		}

		client.Emit("game_state", gin.H{
			"type":       "game_state",
			"game_state": game.SnapshotFor(session, identity.PlayerID),
		})
		log.Printf("[RESYNC-SUCCESS] Sent full snapshot to player %s", identity.PlayerID)
	}
}

func suggesterNameOf(session *redis_models.GameSession) string {
	if session.PendingSuggestion == nil {
		return ""
	}
	if p := session.PlayerByID(session.PendingSuggestion.SuggesterID); p != nil {
		return p.Name
	}
	return ""
}
