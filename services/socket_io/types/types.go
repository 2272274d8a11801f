package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer bundles the socket.io server with the connection map
// (player id -> live socket) and the per-session write locks.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track playerID -> socket connections
	PlayerConnections map[string]*socket.Socket
	mutex             sync.RWMutex

	// One mutex per session: every mutation of a session document runs
	// under its lock, so concurrent actions are totally ordered and
	// never interleave inside a single mutation.
	sessionLocks map[string]*sync.Mutex
	locksMutex   sync.Mutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		PlayerConnections: make(map[string]*socket.Socket),
		sessionLocks:      make(map[string]*sync.Mutex),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(playerID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PlayerConnections[playerID] = client
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.PlayerConnections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.PlayerConnections[playerID]
	return client, exists
}

// SessionLock returns the mutex guarding one session's state, creating
// it on first use. Handlers lock it for the whole load-mutate-save-emit
// sequence of an action.
func (s *SocketServer) SessionLock(lobbyID string) *sync.Mutex {
	s.locksMutex.Lock()
	defer s.locksMutex.Unlock()
	lock, exists := s.sessionLocks[lobbyID]
	if !exists {
		lock = &sync.Mutex{}
		s.sessionLocks[lobbyID] = lock
	}
	return lock
}

// ReleaseSessionLock drops the lock entry of a finished session.
func (s *SocketServer) ReleaseSessionLock(lobbyID string) {
	s.locksMutex.Lock()
	defer s.locksMutex.Unlock()
	delete(s.sessionLocks, lobbyID)
}
