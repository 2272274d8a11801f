package redis

type PlayerStatus string

const (
	StatusOnline  PlayerStatus = "online"
	StatusOffline PlayerStatus = "offline"
)

// PlayerPresence tracks the live connection state of a player, keyed by
// player id. SocketID is used for direct (private) emits.
type PlayerPresence struct {
	PlayerID string       `json:"player_id"`
	Status   PlayerStatus `json:"status"`
	LastSeen int64        `json:"last_seen"` // Unix timestamp
	SocketID string       `json:"socket_id"`
}

// PlayerIdentity is the durable token -> player association used by the
// identity resolver on every connection attach.
type PlayerIdentity struct {
	PlayerID string `json:"player_id"`
	LobbyID  string `json:"lobby_id"`
	Name     string `json:"name"`
}
