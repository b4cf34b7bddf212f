package brand

import "sync"

// Store exposes brand-context persistence for HTTP handlers. Records live
// for the process lifetime; there is no TTL or eviction.
type Store interface {
	Set(sessionID string, ctx Context)
	Get(sessionID string) (Context, bool)
	Update(sessionID string, partial Context) Context
	Has(sessionID string) bool
	Delete(sessionID string) bool
	Clear()
	Len() int
}

// MemoryStore implements Store with a mutex-guarded map. Context is a value
// type, so every Get/Set hands out an independent copy and callers never
// hold a reference into the internal map.
type MemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]Context
}

// NewMemoryStore bootstraps an empty in-memory brand store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{contexts: make(map[string]Context)}
}

// Set stores ctx under sessionID, replacing any existing record.
func (s *MemoryStore) Set(sessionID string, ctx Context) {
	s.mu.Lock()
	s.contexts[sessionID] = ctx
	s.mu.Unlock()
}

// Get retrieves the context stored under sessionID.
func (s *MemoryStore) Get(sessionID string) (Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, ok := s.contexts[sessionID]
	return ctx, ok
}

// Update creates the record if absent, otherwise shallow-merges partial over
// the stored value. Returns the stored result.
func (s *MemoryStore) Update(sessionID string, partial Context) Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := s.contexts[sessionID].Merge(partial)
	s.contexts[sessionID] = merged
	return merged
}

// Has reports whether a record exists for sessionID.
func (s *MemoryStore) Has(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.contexts[sessionID]
	return ok
}

// Delete removes the record for sessionID, reporting whether one existed.
func (s *MemoryStore) Delete(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.contexts[sessionID]
	delete(s.contexts, sessionID)
	return ok
}

// Clear wipes every stored record.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.contexts = make(map[string]Context)
	s.mu.Unlock()
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contexts)
}
