package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWT_encoder issues a short-lived bearer token binding a player id to
// its lobby. The durable reconnect token lives in Redis; this one only
// guards the HTTP endpoints.
func JWT_encoder(playerID string, lobbyID string) (string, error) {
	key := []byte(os.Getenv("KEY"))

	claims := jwt.MapClaims{
		"player_id": playerID,
		"lobby_id":  lobbyID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// JWT_decoder validates the Authorization header and returns the
// player id and lobby id baked into the token.
func JWT_decoder(c *gin.Context) (playerID string, lobbyID string, err error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "", fmt.Errorf("missing bearer token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("KEY")), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid claims")
	}

	playerID, _ = claims["player_id"].(string)
	lobbyID, _ = claims["lobby_id"].(string)
	if playerID == "" || lobbyID == "" {
		return "", "", fmt.Errorf("incomplete claims")
	}
	return playerID, lobbyID, nil
}

// AuthRequired rejects requests without a valid bearer token and
// stores the decoded identity on the gin context.
func AuthRequired(c *gin.Context) {
	playerID, lobbyID, err := JWT_decoder(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set("player_id", playerID)
	c.Set("lobby_id", lobbyID)
	c.Next()
}
