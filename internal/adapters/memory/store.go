// Package memory provides in-process adapters for the pipeline ports. They
// back local runs without DATABASE_URL and serve as fakes in tests.
package memory

import (
	"sync"

	"ats/internal/ports"
)

// Store keeps applications, candidate contacts and queued stage events.
// Each application has its own lock so commits on different applications do
// not wait for each other.
type Store struct {
	mu           sync.RWMutex
	applications map[string]*applicationEntry
	order        []string

	candidatesMu sync.RWMutex
	candidates   map[string]contactRecord

	eventsMu sync.Mutex
	events   []*eventEntry
}

func NewStore() *Store {
	return &Store{
		applications: make(map[string]*applicationEntry),
		candidates:   make(map[string]contactRecord),
	}
}

var (
	_ ports.ApplicationRepository = (*Store)(nil)
	_ ports.CandidateDirectory    = (*Store)(nil)
	_ ports.EventQueue            = (*Store)(nil)
)
