package routes

import (
	"Parlor/controllers"
	"Parlor/middleware"
	"Parlor/services/redis"
	socketio_types "Parlor/services/socket_io/types"
	"Parlor/services/sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient, sio *socketio_types.SocketServer) {
	syncManager := sync.NewSyncManager(redisClient, db)

	lobbyController := &controllers.LobbyController{
		DB:          db,
		RedisClient: redisClient,
		SyncManager: syncManager,
		Sio:         sio,
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/lobbies", lobbyController.GetAllLobbies)
	api.POST("/lobby", lobbyController.CreateLobby)
	api.GET("/lobby/:lobby_id", lobbyController.GetLobbyInfo)
	api.POST("/lobby/:lobby_id/join", lobbyController.JoinLobby)

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.POST("/lobby/leave", lobbyController.LeaveLobby)
		authentication.POST("/lobby/reset", lobbyController.ResetLobby)
	}
}
