package socketio_utils

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/redis"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// EventPayload extracts the JSON object argument of a socket.io event.
// Malformed payloads are dropped with a logged warning and an error
// emit; no state is ever mutated for them.
func EventPayload(client *socket.Socket, event string, args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		log.Printf("[%s-WARN] Dropping event with no payload", event)
		client.Emit("error", gin.H{"error": fmt.Sprintf("%s requires a payload", event)})
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		log.Printf("[%s-WARN] Dropping malformed payload: %v", event, args[0])
		client.Emit("error", gin.H{"error": fmt.Sprintf("%s payload must be an object", event)})
		return nil, false
	}
	return payload, true
}

// PayloadString reads an optional string field from an event payload.
func PayloadString(payload map[string]interface{}, field string) string {
	value, _ := payload[field].(string)
	return value
}

// LoadSession fetches the session document of the player's lobby,
// emitting an error to the client when it is missing.
func LoadSession(redisClient *redis.RedisClient, client *socket.Socket, lobbyID string) (*redis_models.GameSession, error) {
	session, err := redisClient.GetGameSession(lobbyID)
	if err != nil {
		log.Printf("[SESSION-ERROR] Error getting session %s: %v", lobbyID, err)
		client.Emit("error", gin.H{"error": "Game session not found"})
		return nil, err
	}
	return session, nil
}
