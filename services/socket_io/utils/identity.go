package socketio_utils

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/redis"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// VerifyPlayerConnection authenticates a socket.io attach: the client
// presents its durable player token in the handshake auth data and the
// resolver maps it to a player identity. The token is the only thing
// trusted; any player_id the client later puts in payloads is checked
// against the identity resolved here.
func VerifyPlayerConnection(client *socket.Socket, redisClient *redis.RedisClient) (success bool, identity *redis_models.PlayerIdentity) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		log.Println("[AUTH-ERROR] No auth data provided in handshake")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, nil
	}

	token, exists := authData["token"].(string)
	if !exists || token == "" {
		log.Println("[AUTH-ERROR] No player token provided in handshake")
		client.Emit("error", gin.H{"error": "Authentication failed: missing player token"})
		return false, nil
	}

	identity, err := redisClient.ResolvePlayerIdentity(token)
	if err != nil {
		log.Printf("[AUTH-ERROR] Error resolving player token: %v", err)
		client.Emit("error", gin.H{"error": "Authentication failed: could not resolve token"})
		return false, nil
	}
	if identity == nil {
		log.Println("[AUTH-ERROR] Unknown player token")
		client.Emit("error", gin.H{"error": "Authentication failed: unknown player token"})
		return false, nil
	}

	// Record presence so private emits can find this socket later.
	presence := &redis_models.PlayerPresence{
		PlayerID: identity.PlayerID,
		Status:   redis_models.StatusOnline,
		LastSeen: time.Now().Unix(),
		SocketID: string(client.Id()),
	}
	if err := redisClient.SavePlayerPresence(presence); err != nil {
		log.Printf("[AUTH-ERROR] Error saving presence for %s: %v", identity.PlayerID, err)
	}

	return true, identity
}

// CheckClaimedID rejects payloads whose player_id does not match the
// identity resolved from the connection token. The engine never trusts
// client-declared identity.
func CheckClaimedID(client *socket.Socket, identity *redis_models.PlayerIdentity, claimedID string) bool {
	if claimedID != "" && claimedID != identity.PlayerID {
		log.Printf("[AUTH-ERROR] Player %s claimed id %s", identity.PlayerID, claimedID)
		client.Emit("error", gin.H{"error": "Player id does not match your connection"})
		return false
	}
	return true
}
