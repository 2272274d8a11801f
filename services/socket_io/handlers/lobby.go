package handlers

import (
	"Parlor/models/postgres"
	redis_models "Parlor/models/redis"
	"Parlor/services/game"
	"Parlor/services/redis"
	"Parlor/services/retry"
	socketio_types "Parlor/services/socket_io/types"
	socketio_utils "Parlor/services/socket_io/utils"
	"Parlor/utils"
	"fmt"
	"log"

	game_constants "Parlor/constants/game"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// broadcastLobbyUpdate sends the lobby roster and the characters still
// up for grabs to everyone in the lobby room.
func broadcastLobbyUpdate(db *gorm.DB, sio *socketio_types.SocketServer, lobbyID string) {
	players, err := utils.LobbyPlayers(db, lobbyID)
	if err != nil {
		log.Printf("[LOBBY-ERROR] Error listing lobby %s players: %v", lobbyID, err)
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

	socketio_utils.EmitToLobby(sio, lobbyID, "lobby_update", gin.H{
		"type":                 "lobby_update",
		"lobby_id":             lobbyID,
		"players":              roster,
		"count":                len(players),
		"available_characters": utils.AvailableCharacters(players),
	})
}

// HandleJoinLobby attaches the authenticated player's socket to its
// lobby room. Membership itself was established over HTTP when the
// token was issued; this only binds the live connection.
func HandleJoinLobby(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[JOIN] Player %s joining lobby room %s", identity.PlayerID, identity.LobbyID)

		isInLobby, err := utils.IsPlayerInLobby(db, identity.LobbyID, identity.PlayerID)
		if err != nil {
			log.Printf("[JOIN-ERROR] Database error: %v", err)
			client.Emit("error", gin.H{"error": "Database error"})
			return
		}
		if !isInLobby {
			log.Printf("[JOIN-ERROR] Player %s is not a member of lobby %s", identity.PlayerID, identity.LobbyID)
			client.Emit("error", gin.H{"error": "You are not a member of this lobby"})
			return
		}

		client.Join(socket.Room(identity.LobbyID))

		client.Emit("lobby_joined", gin.H{
			"lobby_id":  identity.LobbyID,
			"player_id": identity.PlayerID,
		})
		broadcastLobbyUpdate(db, sio, identity.LobbyID)
	}
}

// HandleChooseCharacter reserves a suspect for the player. Characters
// are unique per lobby; a taken one is rejected without state change.
func HandleChooseCharacter(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "choose_character", args)
		if !ok {
			return
		}
		character := socketio_utils.PayloadString(payload, "character")

		known := false
		for _, c := range game_constants.Suspects {
			if c == character {
				known = true
				break
			}
		}
		if !known {
			client.Emit("error", gin.H{"error": fmt.Sprintf("Unknown character: %s", character)})
			return
		}

		lobby, err := utils.CheckLobbyExists(db, identity.LobbyID)
		if err != nil {
			client.Emit("error", gin.H{"error": "Lobby does not exist"})
			return
		}
		if lobby.GameHasBegun {
			client.Emit("error", gin.H{"error": "The game has already started"})
			return
		}

		var taken int64
		if err := db.Model(&postgres.LobbyPlayer{}).
			Where("lobby_id = ? AND character = ? AND player_id <> ?", identity.LobbyID, character, identity.PlayerID).
			Count(&taken).Error; err != nil {
			log.Printf("[CHARACTER-ERROR] Database error: %v", err)
			client.Emit("error", gin.H{"error": "Database error"})
			return
		}
		if taken > 0 {
			client.Emit("error", gin.H{"error": fmt.Sprintf("%s is already taken", character)})
			return
		}

		if err := db.Model(&postgres.LobbyPlayer{}).
			Where("lobby_id = ? AND player_id = ?", identity.LobbyID, identity.PlayerID).
			Update("character", character).Error; err != nil {
			log.Printf("[CHARACTER-ERROR] Error saving character: %v", err)
			client.Emit("error", gin.H{"error": "Error saving character choice"})
			return
		}

		log.Printf("[CHARACTER-SUCCESS] Player %s picked %s in lobby %s",
			identity.PlayerID, character, identity.LobbyID)
		broadcastLobbyUpdate(db, sio, identity.LobbyID)
	}
}

// markLobbyBegun flips the lobby's begun flag. The flip can race with a
// concurrent start or reset; zero rows affected is transient and worth
// a retry.
func markLobbyBegun(db *gorm.DB, lobbyID string) error {
	return retry.Do("start_game", func() error {
		result := db.Model(&postgres.GameLobby{}).
			Where("id = ? AND game_has_begun = false", lobbyID).
			Update("game_has_begun", true)
		if result.Error != nil {
			return retry.Fatal(result.Error)
		}
		if result.RowsAffected == 0 {
			return retry.Transient(fmt.Errorf("lobby %s not flipped to begun", lobbyID))
		}
		return nil
	})
}

// HandleStartGame transitions the lobby into a running session: deals
// the hidden solution and hands, seats players in join order and
// broadcasts the first snapshot. Host only.
func HandleStartGame(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		lobby, err := utils.CheckLobbyExists(db, identity.LobbyID)
		if err != nil {
			client.Emit("error", gin.H{"error": "Lobby does not exist"})
			return
		}
		if lobby.HostName != identity.Name {
			client.Emit("error", gin.H{"error": "Only the host can start the game"})
			return
		}
		if lobby.GameHasBegun {
			client.Emit("error", gin.H{"error": "The game has already started"})
			return
		}

		players, err := utils.LobbyPlayers(db, identity.LobbyID)
		if err != nil {
			log.Printf("[START-ERROR] Error listing players: %v", err)
			client.Emit("error", gin.H{"error": "Database error"})
			return
		}

		seats := make([]game.Seat, 0, len(players))
		for _, p := range players {
			if p.Character == "" {
				client.Emit("error", gin.H{"error": fmt.Sprintf("%s has not picked a character yet", p.Name)})
				return
			}
			seats = append(seats, game.Seat{PlayerID: p.PlayerID, Name: p.Name, Character: p.Character})
		}

		session, err := game.StartSession(identity.LobbyID, seats)
		if err != nil {
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[START-ERROR] Error saving session: %v", err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		if err := markLobbyBegun(db, identity.LobbyID); err != nil {
			log.Printf("[START-ERROR] Error marking lobby begun: %v", err)
			// The lobby never started: drop the session just written so
			// no orphan document outlives the failed start.
			if delErr := redisClient.DeleteGameSession(identity.LobbyID); delErr != nil {
				log.Printf("[START-ERROR] Error removing session after failed start: %v", delErr)
			}
			client.Emit("error", gin.H{"error": "Error starting the game"})
			return
		}

		log.Printf("[START-SUCCESS] Lobby %s started with %d players", identity.LobbyID, len(seats))
		socketio_utils.BroadcastGameState(sio, session)
	}
}

// HandleDisconnecting marks the player offline and tells the lobby.
// Membership and session state stay untouched: the durable token lets
// the player reconnect and resync.
func HandleDisconnecting(redisClient *redis.RedisClient,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Player %s disconnecting", identity.PlayerID)

		presence := &redis_models.PlayerPresence{
			PlayerID: identity.PlayerID,
			Status:   redis_models.StatusOffline,
		}
		if err := redisClient.SavePlayerPresence(presence); err != nil {
			log.Printf("[DISCONNECT-ERROR] Error saving presence: %v", err)
		}

		sio.RemoveConnection(identity.PlayerID)

		socketio_utils.EmitToLobby(sio, identity.LobbyID, "player_left", gin.H{
			"player_id": identity.PlayerID,
			"name":      identity.Name,
			"reason":    "disconnected",
		})
		log.Printf("[DISCONNECT-DONE] Player %s disconnected", identity.PlayerID)
	}
}
