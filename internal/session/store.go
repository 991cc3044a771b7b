package session

import (
	"strings"
	"sync"

	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

const accountSIDLength = 34

// ValidAccountSID checks the provider's account identifier format: the "AC"
// prefix and the exact fixed length. Anything else is rejected before a
// network round trip is wasted on it.
func ValidAccountSID(sid string) bool {
	return strings.HasPrefix(sid, "AC") && len(sid) == accountSIDLength
}

type record struct {
	accountSID string
	authToken  string
	client     telco.API
}

// Store holds per-user provider credentials and the cached authenticated
// client handle. Credentials live only for the process lifetime.
type Store struct {
	mu      sync.RWMutex
	records map[int64]*record

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		records: make(map[int64]*record),
		locks:   make(map[int64]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing resolver access for one user.
// Lock entries are never removed; the set of users is small and bounded by
// process lifetime.
func (s *Store) lockFor(userID int64) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// SetCredentials stores a credential pair for the user and drops any cached
// client handle, which must be revalidated against the new pair.
func (s *Store) SetCredentials(userID int64, accountSID, authToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = &record{accountSID: accountSID, authToken: authToken}
}

func (s *Store) Credentials(userID int64) (accountSID, authToken string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return "", "", false
	}
	return rec.accountSID, rec.authToken, true
}

func (s *Store) Client(userID int64) telco.API {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil
	}
	return rec.client
}

func (s *Store) SetClient(userID int64, client telco.API) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[userID]; ok {
		rec.client = client
	}
}

func (s *Store) ClearClient(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[userID]; ok {
		rec.client = nil
	}
}

// Delete removes the whole session record: credentials and handle.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userID)
}

// Count returns the number of users with a stored session.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
