package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatSessionKey(lobbyID string) string {
	return fmt.Sprintf("session:%s", lobbyID)
}

func FormatTokenKey(token string) string {
	return fmt.Sprintf("token:%s", token)
}

func FormatPresenceKey(playerID string) string {
	return fmt.Sprintf("presence:%s", playerID)
}
