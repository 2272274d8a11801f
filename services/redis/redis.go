package redis

import (
	redis_models "Parlor/models/redis"
	redis_utils "Parlor/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(addr string, db int) *RedisClient {
	var client *redis.Client
	if addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveGameSession stores the authoritative session document in Redis.
// Key format: "session:{lobbyID}"
// TTL: 24 hours
func (rc *RedisClient) SaveGameSession(session *redis_models.GameSession) error {
	key := redis_utils.FormatSessionKey(session.LobbyID)
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// GetGameSession retrieves the authoritative session document.
// Key format: "session:{lobbyID}"
func (rc *RedisClient) GetGameSession(lobbyID string) (*redis_models.GameSession, error) {
	key := redis_utils.FormatSessionKey(lobbyID)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting session data: %v", err)
	}

	var session redis_models.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session data: %v", err)
	}
	return &session, nil
}

// DeleteGameSession removes a session document from Redis.
func (rc *RedisClient) DeleteGameSession(lobbyID string) error {
	key := redis_utils.FormatSessionKey(lobbyID)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting session data: %v", err)
	}
	return nil
}

// SavePlayerIdentity stores the durable token -> player association.
// Key format: "token:{token}"
// TTL: 24 hours, refreshed on every resolve
func (rc *RedisClient) SavePlayerIdentity(token string, identity *redis_models.PlayerIdentity) error {
	key := redis_utils.FormatTokenKey(token)
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("error marshaling identity data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// ResolvePlayerIdentity maps a client-presented token to a player identity.
// Returns (nil, nil) when the token is unknown.
func (rc *RedisClient) ResolvePlayerIdentity(token string) (*redis_models.PlayerIdentity, error) {
	key := redis_utils.FormatTokenKey(token)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving player token: %v", err)
	}

	var identity redis_models.PlayerIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("error unmarshaling identity data: %v", err)
	}

	// Refresh the TTL so long-running games keep their tokens alive
	rc.client.Expire(rc.ctx, key, 24*time.Hour)

	return &identity, nil
}

// DeletePlayerIdentity invalidates a reconnect token.
func (rc *RedisClient) DeletePlayerIdentity(token string) error {
	key := redis_utils.FormatTokenKey(token)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting player token: %v", err)
	}
	return nil
}

// SavePlayerPresence stores the live connection record of a player.
// Key format: "presence:{playerID}"
func (rc *RedisClient) SavePlayerPresence(presence *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPresenceKey(presence.PlayerID)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// GetPlayerPresence retrieves the live connection record of a player.
// Returns (nil, nil) when no presence is recorded.
func (rc *RedisClient) GetPlayerPresence(playerID string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(playerID)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting presence data: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &presence, nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
