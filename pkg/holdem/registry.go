package holdem

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry tracks the live rooms by UUID. Callers create one per process
// and share it; there is no package-level instance.
type Registry struct {
	log logrus.FieldLogger

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry returns an empty registry
func NewRegistry(log logrus.FieldLogger) *Registry {
	return &Registry{
		log:   log,
		rooms: make(map[string]*Room),
	}
}

// CreateRoom creates a room seated by master and tracks it
func (r *Registry) CreateRoom(master *Player, level BlindLevel) (*Room, error) {
	room, err := NewRoom(r.log, master, level)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.rooms[room.ID()] = room
	r.mu.Unlock()

	return room, nil
}

// Room returns the room with the given UUID
func (r *Registry) Room(id string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// Rooms returns all tracked rooms
func (r *Registry) Rooms() []*Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}

	return rooms
}

// RemoveRoom stops tracking the room with the given UUID
func (r *Registry) RemoveRoom(id string) {
	r.mu.Lock()
	delete(r.rooms, id)
	r.mu.Unlock()
}
