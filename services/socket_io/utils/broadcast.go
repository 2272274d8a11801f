package socketio_utils

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/game"
	socketio_types "Parlor/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// BroadcastGameState fans the authoritative snapshot out to every
// seated player. Each player gets a personalized rendering (own hand
// and known cards only) but the fan-out is a single loop from the
// single-writer handler, so all participants observe snapshots in the
// same relative order. Disconnected players simply miss the emit; they
// catch up through resync when they come back.
func BroadcastGameState(sio *socketio_types.SocketServer, session *redis_models.GameSession) {
	for i := range session.Players {
		playerID := session.Players[i].ID
		client, exists := sio.GetConnection(playerID)
		if !exists {
			continue
		}
		client.Emit("game_state", gin.H{
			"type":       "game_state",
			"game_state": game.SnapshotFor(session, playerID),
		})
	}
	log.Printf("[STATE-BROADCAST] Sent game_state to lobby %s (%d players)",
		session.LobbyID, len(session.Players))
}

// EmitPrivate sends an event to one player only, if connected.
func EmitPrivate(sio *socketio_types.SocketServer, playerID string, event string, payload gin.H) {
	client, exists := sio.GetConnection(playerID)
	if !exists {
		log.Printf("[EMIT-WARN] Player %s not connected, dropping private %s", playerID, event)
		return
	}
	client.Emit(event, payload)
}

// EmitToLobby broadcasts an event to every socket in the lobby room.
func EmitToLobby(sio *socketio_types.SocketServer, lobbyID string, event string, payload gin.H) {
	sio.Sio_server.To(socket.Room(lobbyID)).Emit(event, payload)
}
