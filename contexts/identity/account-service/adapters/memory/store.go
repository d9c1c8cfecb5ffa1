package memory

import (
	"context"
	"strings"
	"sync"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
)

// Store is an in-memory ProfileRepository used by tests and the in-memory
// module wiring.
type Store struct {
	mu             sync.RWMutex
	profilesByName map[string]entities.UserProfile
	nextUserID     int64
}

func NewStore() *Store {
	return &Store{
		profilesByName: make(map[string]entities.UserProfile),
		nextUserID:     1,
	}
}

func (s *Store) CreateProfile(_ context.Context, profile entities.UserProfile) (entities.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.TrimSpace(profile.Username)
	if _, exists := s.profilesByName[username]; exists {
		return entities.UserProfile{}, domainerrors.ErrUsernameTaken
	}

	profile.Username = username
	profile.UserID = s.nextUserID
	s.nextUserID++
	s.profilesByName[username] = profile
	return profile, nil
}

func (s *Store) GetProfileByUsername(_ context.Context, username string) (entities.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profilesByName[strings.TrimSpace(username)]
	if !ok {
		return entities.UserProfile{}, domainerrors.ErrProfileNotFound
	}
	return profile, nil
}

// SetRole rewrites the stored role for a profile. Test hook for exercising
// role re-derivation on tokens issued before a role change.
func (s *Store) SetRole(username string, role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profilesByName[strings.TrimSpace(username)]
	if !ok {
		return false
	}
	profile.Role = role
	s.profilesByName[profile.Username] = profile
	return true
}
