package view

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Sessions maps browser session IDs to controllers. The least recently used
// session is dropped once the store is full.
type Sessions struct {
	cache *lru.Cache[string, *Controller]
}

func NewSessions(size int) (*Sessions, error) {
	if size <= 0 {
		size = 256
	}
	c, err := lru.New[string, *Controller](size)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &Sessions{cache: c}, nil
}

func (s *Sessions) Get(id string) (*Controller, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// Create starts a fresh session with default parameters.
func (s *Sessions) Create() (string, *Controller) {
	id := uuid.NewString()
	c := NewController()
	s.cache.Add(id, c)
	return id, c
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}
