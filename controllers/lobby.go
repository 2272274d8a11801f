package controllers

import (
	game_constants "Parlor/constants/game"
	"Parlor/middleware"
	models "Parlor/models/postgres"
	redis_models "Parlor/models/redis"
	"Parlor/services/redis"
	"Parlor/services/retry"
	socketio_types "Parlor/services/socket_io/types"
	"Parlor/services/sync"
	"Parlor/utils"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zishang520/socket.io/v2/socket"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LobbyController struct {
	DB          *gorm.DB
	RedisClient *redis.RedisClient
	SyncManager *sync.SyncManager
	Sio         *socketio_types.SocketServer
}

// @Summary Health check
// @Description Returns pong
// @Tags misc
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// issueIdentity seats a player, mints the durable reconnect token and
// a bearer token. The raw reconnect token is returned once and only
// its SHA-256 is stored durably.
func (lc *LobbyController) issueIdentity(lobbyID string, name string) (gin.H, error) {
	playerID := uuid.NewString()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("error generating token: %v", err)
	}
	token := hex.EncodeToString(raw)
	hash := sha256.Sum256([]byte(token))

	player := models.LobbyPlayer{
		LobbyID:   lobbyID,
		PlayerID:  playerID,
		Name:      name,
		TokenHash: hex.EncodeToString(hash[:]),
	}
	if err := lc.DB.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("error seating player: %v", err)
	}

	identity := &redis_models.PlayerIdentity{
		PlayerID: playerID,
		LobbyID:  lobbyID,
		Name:     name,
	}
	if err := lc.RedisClient.SavePlayerIdentity(token, identity); err != nil {
		return nil, fmt.Errorf("error saving identity: %v", err)
	}

	jwtToken, err := middleware.JWT_encoder(playerID, lobbyID)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %v", err)
	}

	return gin.H{
		"player_id": playerID,
		"token":     token,
		"jwt":       jwtToken,
	}, nil
}

// @Summary Creates a new lobby
// @Description Creates a lobby, seats the host and returns the lobby id plus the host's credentials
// @Tags lobby
// @Accept json
// @Produce json
// @Param request body object{host_name=string,passcode=string} true "Host name and optional passcode"
// @Success 200 {object} object{lobby_id=string,player_id=string,token=string,jwt=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /lobby [post]
func (lc *LobbyController) CreateLobby(c *gin.Context) {
	var req struct {
		HostName string `json:"host_name"`
		Passcode string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.HostName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "host_name is required"})
		return
	}

	lobby := models.GameLobby{
		HostName: strings.TrimSpace(req.HostName),
	}
	if req.Passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Passcode), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing passcode"})
			return
		}
		lobby.PasscodeHash = string(hash)
	}

	// *There is a function on the models gamelobby "BeforeCreate" for the id generation
	if err := lc.DB.Create(&lobby).Error; err != nil {
		log.Printf("[LOBBY-ERROR] Failed to create lobby: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating lobby"})
		return
	}

	credentials, err := lc.issueIdentity(lobby.ID, lobby.HostName)
	if err != nil {
		log.Printf("[LOBBY-ERROR] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error seating host"})
		return
	}
	credentials["lobby_id"] = lobby.ID

	c.JSON(http.StatusOK, credentials)
}

// @Summary Gives info of a lobby
// @Description Given a lobby id, returns its roster and status
// @Tags lobby
// @Produce json
// @Param lobby_id path string true "Id of the lobby wanted"
// @Success 200 {object} object{lobby_id=string,host_name=string,player_count=integer}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /lobby/{lobby_id} [get]
func (lc *LobbyController) GetLobbyInfo(c *gin.Context) {
	lobbyID := c.Param("lobby_id")

	var lobby models.GameLobby
	result := lc.DB.Where("id = ?", lobbyID).First(&lobby)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		}
		return
	}

	players, err := utils.LobbyPlayers(lc.DB, lobbyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing players"})
		return
	}

	roster := make([]gin.H, 0, len(players))
	for _, p := range players {
		roster = append(roster, gin.H{
			"name":      p.Name,
			"character": p.Character,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lobby_id":             lobby.ID,
		"host_name":            lobby.HostName,
		"game_has_begun":       lobby.GameHasBegun,
		"has_passcode":         lobby.PasscodeHash != "",
		"player_count":         len(players),
		"players":              roster,
		"available_characters": utils.AvailableCharacters(players),
		"created_at":           lobby.CreatedAt,
	})
}

// @Summary Lists all joinable lobbies
// @Description Returns the lobbies whose game has not begun yet
// @Tags lobby
// @Produce json
// @Success 200 {array} object{lobby_id=string,host_name=string,player_count=integer}
// @Failure 500 {object} object{error=string}
// @Router /lobbies [get]
func (lc *LobbyController) GetAllLobbies(c *gin.Context) {
	var gameLobbies []models.GameLobby
	if err := lc.DB.Preload("LobbyPlayers").
		Where("game_has_begun = false").
		Find(&gameLobbies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing lobbies"})
		return
	}

	lobbies := make([]gin.H, len(gameLobbies))
	for i, lobby := range gameLobbies {
		lobbies[i] = gin.H{
			"lobby_id":     lobby.ID,
			"host_name":    lobby.HostName,
			"has_passcode": lobby.PasscodeHash != "",
			"player_count": len(lobby.LobbyPlayers),
			"created_at":   lobby.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, lobbies)
}

// @Summary Inserts a player into a lobby
// @Description Seats the player in the lobby and returns their credentials
// @Tags lobby
// @Accept json
// @Produce json
// @Param lobby_id path string true "lobby_id"
// @Param request body object{name=string,passcode=string} true "Player name and passcode if the lobby has one"
// @Success 200 {object} object{lobby_id=string,player_id=string,token=string,jwt=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /lobby/{lobby_id}/join [post]
func (lc *LobbyController) JoinLobby(c *gin.Context) {
	lobbyID := c.Param("lobby_id")

	var req struct {
		Name     string `json:"name"`
		Passcode string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	name := strings.TrimSpace(req.Name)

	lobby, err := utils.CheckLobbyExists(lc.DB, lobbyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
		return
	}
	if lobby.GameHasBegun {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The game has already started"})
		return
	}
	if lobby.PasscodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(lobby.PasscodeHash), []byte(req.Passcode)); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid passcode"})
			return
		}
	}

	players, err := utils.LobbyPlayers(lc.DB, lobbyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing players"})
		return
	}
	if len(players) >= game_constants.MaxPlayers {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lobby is full"})
		return
	}
	for _, p := range players {
		if p.Name == name {
			c.JSON(http.StatusBadRequest, gin.H{"error": "That name is already taken in this lobby"})
			return
		}
	}

	credentials, err := lc.issueIdentity(lobbyID, name)
	if err != nil {
		log.Printf("[LOBBY-ERROR] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining lobby"})
		return
	}
	credentials["lobby_id"] = lobbyID

	c.JSON(http.StatusOK, credentials)
}

// @Summary Removes the player from the lobby
// @Description Unseats the authenticated player; only allowed before the game starts
// @Tags lobby
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/lobby/leave [post]
func (lc *LobbyController) LeaveLobby(c *gin.Context) {
	playerID := c.GetString("player_id")
	lobbyID := c.GetString("lobby_id")

	lobby, err := utils.CheckLobbyExists(lc.DB, lobbyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
		return
	}
	if lobby.GameHasBegun {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot leave a running game"})
		return
	}

	result := lc.DB.Where("lobby_id = ? AND player_id = ?", lobbyID, playerID).
		Delete(&models.LobbyPlayer{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leaving lobby"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You are not seated in this lobby"})
		return
	}

	if lc.Sio.Sio_server != nil {
		lc.Sio.Sio_server.To(socket.Room(lobbyID)).Emit("player_left", gin.H{
			"player_id": playerID,
			"reason":    "left",
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left lobby successfully"})
}

// @Summary Resets a finished or stuck session
// @Description Deletes the volatile session, reopens the lobby and tells every client to resync. Host only.
// @Tags lobby
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/lobby/reset [post]
func (lc *LobbyController) ResetLobby(c *gin.Context) {
	playerID := c.GetString("player_id")
	lobbyID := c.GetString("lobby_id")

	lobby, err := utils.CheckLobbyExists(lc.DB, lobbyID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
		return
	}

	isHost, err := utils.IsPlayerInLobby(lc.DB, lobbyID, playerID)
	if err != nil || !isHost {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this lobby"})
		return
	}
	var seat models.LobbyPlayer
	if err := lc.DB.Where("lobby_id = ? AND player_id = ?", lobbyID, playerID).
		First(&seat).Error; err != nil || seat.Name != lobby.HostName {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the host can reset the lobby"})
		return
	}

	// Same single-writer discipline as the socket handlers: the whole
	// read-cleanup-reopen sequence holds the session lock, so an
	// in-flight action can never save the document back after the
	// cleanup deleted it.
	lock := lc.Sio.SessionLock(lobbyID)
	lock.Lock()
	defer lock.Unlock()

	session, err := lc.RedisClient.GetGameSession(lobbyID)
	if err == nil && session != nil {
		if session.Status == redis_models.StatusActive {
			session.Status = redis_models.StatusAbandoned
		}
		if err := lc.SyncManager.SyncFinalResult(session); err != nil {
			log.Printf("[RESET-ERROR] Error persisting final result: %v", err)
		}
		if err := lc.SyncManager.CleanupGameData(session); err != nil {
			log.Printf("[RESET-ERROR] Error cleaning session keys: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cleaning up session"})
			return
		}
	}

	err = retry.Do("reset_lobby", func() error {
		result := lc.DB.Model(&models.GameLobby{}).
			Where("id = ?", lobbyID).
			Update("game_has_begun", false)
		if result.Error != nil {
			return retry.Transient(result.Error)
		}
		return nil
	})
	if err != nil {
		log.Printf("[RESET-ERROR] Error reopening lobby: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reopening lobby"})
		return
	}

	// The session document is gone; drop its lock entry. Any action
	// still queued on the old mutex finds no session and mutates nothing.
	lc.Sio.ReleaseSessionLock(lobbyID)

	if lc.Sio.Sio_server != nil {
		lc.Sio.Sio_server.To(socket.Room(lobbyID)).Emit("session_reset", gin.H{
			"type":     "session_reset",
			"lobby_id": lobbyID,
		})
	}

	log.Printf("[RESET-SUCCESS] Lobby %s reset by host %s", lobbyID, playerID)
	c.JSON(http.StatusOK, gin.H{"message": "Lobby reset successfully"})
}
