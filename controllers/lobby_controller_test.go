package controllers

import (
	"Parlor/services/redis"
	socketio_types "Parlor/services/socket_io/types"
	"Parlor/services/sync"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockController(t *testing.T) (*LobbyController, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return &LobbyController{
		DB:          gormDB,
		RedisClient: &redis.RedisClient{},
		SyncManager: &sync.SyncManager{},
		Sio:         socketio_types.NewSocketServer(),
	}, mock
}

// withIdentity injects the decoded bearer identity the way AuthRequired
// would.
func withIdentity(playerID, lobbyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("player_id", playerID)
		c.Set("lobby_id", lobbyID)
		c.Next()
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pong", body["message"])
}

func TestGetLobbyInfoNotFound(t *testing.T) {
	lobbyController, mock := setupMockController(t)

	router := gin.New()
	router.GET("/lobby/:lobby_id", lobbyController.GetLobbyInfo)

	mock.ExpectQuery(`SELECT \* FROM "game_lobbies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req, _ := http.NewRequest("GET", "/lobby/ZZZZ", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLobbyInfo(t *testing.T) {
	lobbyController, mock := setupMockController(t)

	router := gin.New()
	router.GET("/lobby/:lobby_id", lobbyController.GetLobbyInfo)

	mock.ExpectQuery(`SELECT \* FROM "game_lobbies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_name", "game_has_begun", "passcode_hash"}).
			AddRow("ABCD", "Alice", false, ""))

	mock.ExpectQuery(`SELECT \* FROM "lobby_players"`).
		WillReturnRows(sqlmock.NewRows([]string{"lobby_id", "player_id", "name", "character"}).
			AddRow("ABCD", "p-alice", "Alice", "Miss Scarlet").
			AddRow("ABCD", "p-bob", "Bob", ""))

	req, _ := http.NewRequest("GET", "/lobby/ABCD", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ABCD", body["lobby_id"])
	assert.Equal(t, "Alice", body["host_name"])
	assert.Equal(t, false, body["game_has_begun"])
	assert.Equal(t, float64(2), body["player_count"])

	// Miss Scarlet is taken, the other five suspects remain.
	available, ok := body["available_characters"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, available, 5)
	assert.NotContains(t, available, "Miss Scarlet")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinLobbyRejectsStartedGame(t *testing.T) {
	lobbyController, mock := setupMockController(t)

	router := gin.New()
	router.POST("/lobby/:lobby_id/join", lobbyController.JoinLobby)

	mock.ExpectQuery(`SELECT \* FROM "game_lobbies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_name", "game_has_begun"}).
			AddRow("ABCD", "Alice", true))

	payload, _ := json.Marshal(gin.H{"name": "Dave"})
	req, _ := http.NewRequest("POST", "/lobby/ABCD/join", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinLobbyRequiresName(t *testing.T) {
	lobbyController, _ := setupMockController(t)

	router := gin.New()
	router.POST("/lobby/:lobby_id/join", lobbyController.JoinLobby)

	payload, _ := json.Marshal(gin.H{"name": "   "})
	req, _ := http.NewRequest("POST", "/lobby/ABCD/join", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetLobbyRejectsNonHost(t *testing.T) {
	lobbyController, mock := setupMockController(t)

	router := gin.New()
	router.POST("/auth/lobby/reset", withIdentity("p-mallory", "ABCD"), lobbyController.ResetLobby)

	mock.ExpectQuery(`SELECT \* FROM "game_lobbies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "host_name", "game_has_begun"}).
			AddRow("ABCD", "Alice", true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lobby_players"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "lobby_players"`).
		WillReturnRows(sqlmock.NewRows([]string{"lobby_id", "player_id", "name"}).
			AddRow("ABCD", "p-mallory", "Mallory"))

	req, _ := http.NewRequest("POST", "/auth/lobby/reset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLobbyRequiresHostName(t *testing.T) {
	lobbyController, _ := setupMockController(t)

	router := gin.New()
	router.POST("/lobby", lobbyController.CreateLobby)

	payload, _ := json.Marshal(gin.H{"passcode": "secret"})
	req, _ := http.NewRequest("POST", "/lobby", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
