package socket_io

import (
	"Parlor/services/redis"
	"Parlor/services/socket_io/handlers"

	socketio_types "Parlor/services/socket_io/types"
	socketio_utils "Parlor/services/socket_io/utils"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type GameSocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers
// the per-connection event handlers. The transport itself (liveness,
// ordered per-connection delivery, client reconnect with capped
// backoff) is socket.io's job; the engine only ever sees authenticated
// envelopes and answers resync requests after a reconnect.
func (sio *GameSocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load
	// and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.PlayerConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Resolve the durable token to a player identity; the claimed
		// player_id inside later payloads is never trusted on its own.
		success, identity := socketio_utils.VerifyPlayerConnection(client, redisClient)
		if !success {
			return
		}

		(*socketio_types.SocketServer)(sio).AddConnection(identity.PlayerID, client)
		log.Printf("[CONNECT] Player %s (%s) attached, lobby %s",
			identity.Name, identity.PlayerID, identity.LobbyID)

		sioT := (*socketio_types.SocketServer)(sio)

		// Lobby lifecycle
		client.On("join_lobby", handlers.HandleJoinLobby(redisClient, client, db, identity, sioT))
		client.On("choose_character", handlers.HandleChooseCharacter(redisClient, client, db, identity, sioT))
		client.On("start_game", handlers.HandleStartGame(redisClient, client, db, identity, sioT))

		// Turn protocol
		client.On("make_move", handlers.HandleMakeMove(redisClient, client, identity, sioT))
		client.On("make_suggestion", handlers.HandleMakeSuggestion(redisClient, client, identity, sioT))
		client.On("make_accusation", handlers.HandleMakeAccusation(redisClient, client, db, identity, sioT))
		client.On("choose_disproving_card", handlers.HandleChooseDisprovingCard(redisClient, client, identity, sioT))
		client.On("end_turn", handlers.HandleEndTurn(redisClient, client, identity, sioT))

		// Reconciliation: full snapshot on demand, mandatory after any
		// reconnect.
		client.On("resync", handlers.HandleResync(redisClient, client, db, identity, sioT))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(redisClient, identity, sioT))

		// First attach behaves like a reconnect: push the current state
		// without waiting for an explicit resync.
		handlers.HandleResync(redisClient, client, db, identity, sioT)()
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
