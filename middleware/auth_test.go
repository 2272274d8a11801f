package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := JWT_encoder("p-alice", "ABCD")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	playerID, lobbyID, err := JWT_decoder(c)
	assert.NoError(t, err)
	assert.Equal(t, "p-alice", playerID)
	assert.Equal(t, "ABCD", lobbyID)
}

func TestJWTDecoderRejectsMissingHeader(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/", nil)

	_, _, err := JWT_decoder(c)
	assert.Error(t, err)
}

func TestJWTDecoderRejectsForgedToken(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	token, err := JWT_encoder("p-alice", "ABCD")
	assert.NoError(t, err)

	t.Setenv("KEY", "different-secret")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	_, _, err = JWT_decoder(c)
	assert.Error(t, err)
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/private", AuthRequired, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"player_id": c.GetString("player_id"),
			"lobby_id":  c.GetString("lobby_id"),
		})
	})

	// No token: rejected.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token: identity lands on the context.
	token, _ := JWT_encoder("p-bob", "WXYZ")
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p-bob")
}
