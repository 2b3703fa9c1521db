package verificationstore

import (
	"context"
	"sync"

	"github.com/chainsafe/social-verifier/pkg/verification"
)

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]verification.Record
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]verification.Record)}
}

func (s *MemoryStore) Exists(_ context.Context, wallet string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[wallet]
	return ok, nil
}

func (s *MemoryStore) Get(_ context.Context, wallet string) (*verification.Record, error) {
	s.mu.RLock()
	rec, ok := s.records[wallet]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(&rec), nil
}

func (s *MemoryStore) Save(_ context.Context, rec *verification.Record) error {
	cp := cloneRecord(rec)
	s.mu.Lock()
	s.records[rec.WalletAddress] = *cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Count(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// cloneRecord copies rec so callers cannot mutate stored state.
func cloneRecord(rec *verification.Record) *verification.Record {
	cp := *rec
	if rec.BridgeInfo != nil {
		info := *rec.BridgeInfo
		cp.BridgeInfo = &info
	}
	return &cp
}
