package session

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/aydeggy-dot/InvoiceNG/internal/models"
)

// Session is the authenticated state of the gateway: the bearer credentials
// and the signed-in user's profile. AccessToken is non-empty iff User is
// non-nil. PendingPhone holds the canonical number between the request-otp
// and verify-otp steps.
type Session struct {
	AccessToken  string
	RefreshToken string
	PendingPhone string
	User         *models.User
}

// record is the single persisted session row
type record struct {
	ID           uint `gorm:"primaryKey"`
	AccessToken  string
	RefreshToken string
	PendingPhone string
	UserJSON     []byte
	UpdatedAt    time.Time
}

func (record) TableName() string {
	return "session"
}

// Store owns the process-wide session. Reads and writes are synchronous and
// last-write-wins; every write replaces the affected fields atomically so no
// reader observes a partially-updated session. When backed by a database the
// state survives restarts.
type Store struct {
	mu  sync.RWMutex
	db  *gorm.DB
	cur Session
}

// NewStore creates a session store. db may be nil for an in-memory store
// (used in tests and when no SESSION_DB_PATH is configured); otherwise the
// previously persisted session is rehydrated.
func NewStore(db *gorm.DB) (*Store, error) {
	s := &Store{db: db}

	if db != nil {
		if err := db.AutoMigrate(&record{}); err != nil {
			return nil, fmt.Errorf("failed to migrate session table: %w", err)
		}

		var rec record
		err := db.First(&rec, 1).Error
		switch {
		case err == nil:
			s.cur = Session{
				AccessToken:  rec.AccessToken,
				RefreshToken: rec.RefreshToken,
				PendingPhone: rec.PendingPhone,
			}
			if len(rec.UserJSON) > 0 {
				var user models.User
				if jsonErr := json.Unmarshal(rec.UserJSON, &user); jsonErr == nil {
					s.cur.User = &user
				}
			}
			// Enforce the all-or-nothing invariant on rehydration
			if s.cur.AccessToken == "" || s.cur.User == nil {
				s.cur.AccessToken = ""
				s.cur.RefreshToken = ""
				s.cur.User = nil
			}
		case err == gorm.ErrRecordNotFound:
			// Fresh install, start unauthenticated
		default:
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
	}

	return s, nil
}

// NewMemoryStore creates a session store with no persistence
func NewMemoryStore() *Store {
	return &Store{}
}

// Current returns a copy of the session state
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// AccessToken returns the current access credential, empty when signed out
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken
}

// RefreshToken returns the current refresh credential, empty when signed out
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.RefreshToken
}

// PendingPhone returns the number awaiting OTP verification, if any
func (s *Store) PendingPhone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.PendingPhone
}

// User returns the signed-in user's profile, nil when signed out
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.User
}

// IsAuthenticated reports whether an access credential is present
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken != ""
}

// SetAuth replaces credentials and profile in one atomic write. The
// OTP-pending phone is consumed by a successful verification.
func (s *Store) SetAuth(accessToken, refreshToken string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}
	s.persist()
}

// SetUser replaces the profile only, preserving credentials. Used after a
// profile update round-trips through the API.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur.User = user
	s.persist()
}

// SetPendingPhone records the phone number an OTP was requested for
func (s *Store) SetPendingPhone(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur.PendingPhone = phone
	s.persist()
}

// Logout clears credentials, profile and any pending OTP step
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Session{}
	s.persist()
}

// persist writes the current state to the database. Caller holds s.mu.
func (s *Store) persist() {
	if s.db == nil {
		return
	}

	rec := record{
		ID:           1,
		AccessToken:  s.cur.AccessToken,
		RefreshToken: s.cur.RefreshToken,
		PendingPhone: s.cur.PendingPhone,
		UpdatedAt:    time.Now(),
	}
	if s.cur.User != nil {
		if data, err := json.Marshal(s.cur.User); err == nil {
			rec.UserJSON = data
		}
	}

	if err := s.db.Save(&rec).Error; err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
}
