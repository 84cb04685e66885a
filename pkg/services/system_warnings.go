package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants for categorizing system warnings.
const (
	WarningCategoryCalendarAuth = "calendar_auth" // a user's calendar token refresh is failing
)

// SystemWarning represents a non-fatal system issue.
type SystemWarning struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	UserID    string    `json:"user_id,omitempty"` // For per-user warnings
	CreatedAt time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings. Negotiations
// degrade silently when a participant's calendar credentials break (the
// participant just looks fully free), so operators need a surface that says
// whose tokens are failing. Thread-safe. Not persisted — warnings are
// transient and reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID.
// If a warning with the same category+userID already exists, it is replaced.
func (s *SystemWarningsService) AddWarning(category, message, details, userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace existing warning with same category+userID to avoid duplicates
	for id, w := range s.warnings {
		if w.Category == category && w.UserID == userID {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:        id,
		Category:  category,
		Message:   message,
		Details:   details,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return id
}

// GetWarnings returns all active warnings as value copies.
// Callers may safely read or compare the returned structs without holding locks.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	return result
}

// ClearByUserID removes a warning matching category + userID. Called when a
// refresh for that user succeeds again. Returns true if a warning was removed.
func (s *SystemWarningsService) ClearByUserID(category, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.UserID == userID {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}
