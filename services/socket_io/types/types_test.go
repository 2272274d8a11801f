package socketio_types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLockIsOnePerSession(t *testing.T) {
	s := NewSocketServer()

	first := s.SessionLock("ABCD")
	second := s.SessionLock("ABCD")
	assert.Same(t, first, second, "every writer of a session must contend on the same mutex")

	other := s.SessionLock("WXYZ")
	assert.NotSame(t, first, other)
}

func TestSessionLockSerializesWriters(t *testing.T) {
	// Two goroutines hammer a shared counter under the session lock;
	// without mutual exclusion the final count would be short.
	s := NewSocketServer()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				lock := s.SessionLock("ABCD")
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2000, counter)
}

func TestReleaseSessionLockRetiresTheEntry(t *testing.T) {
	s := NewSocketServer()

	old := s.SessionLock("ABCD")
	s.ReleaseSessionLock("ABCD")

	fresh := s.SessionLock("ABCD")
	assert.NotSame(t, old, fresh, "a reset session starts over with a fresh lock")
}

func TestConnectionMap(t *testing.T) {
	s := NewSocketServer()

	_, exists := s.GetConnection("p-alice")
	assert.False(t, exists)

	s.AddConnection("p-alice", nil)
	_, exists = s.GetConnection("p-alice")
	assert.True(t, exists)

	s.RemoveConnection("p-alice")
	_, exists = s.GetConnection("p-alice")
	assert.False(t, exists)
}
