package storage

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/adisakb/e-sarabun/internal"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	notificationmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/notification"
	sysconfigmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/sysconfig"
	usermodel "github.com/adisakb/e-sarabun/internal/core/datamodel/user"
)

// Persistence keys, one per collection plus the config singleton. Kept
// identical to the browser-era storage keys so exported state stays portable.
const (
	KeyDocuments     = "esarabun_docs"
	KeyUsers         = "esarabun_users"
	KeyCategories    = "esarabun_cats"
	KeyNotifications = "esarabun_notis"
	KeyConfig        = "esarabun_config"
)

// Store owns the canonical in-memory collections. Every accepted mutation is
// mirrored to the KV in full (one key per collection) before the mutation
// returns. Reads always come from memory; the KV is only read at startup.
type Store struct {
	kv     KV
	logger *slog.Logger

	mu            sync.RWMutex
	documents     []documentmodel.Document
	users         []usermodel.User
	categories    []string
	notifications []notificationmodel.Item
	config        sysconfigmodel.SystemConfig
}

// NewStore loads all collections from the KV, substituting seed data for any
// key that is absent or fails to parse. Corrupt state never blocks startup.
func NewStore(kv KV, logger *slog.Logger) *Store {
	s := &Store{kv: kv, logger: logger}

	s.documents = loadOr(s, KeyDocuments, SeedDocuments())
	s.users = loadOr(s, KeyUsers, SeedUsers())
	s.categories = loadOr(s, KeyCategories, SeedCategories())
	s.notifications = loadOr(s, KeyNotifications, []notificationmodel.Item{})
	s.config = loadOr(s, KeyConfig, SeedConfig())

	logger.Info("record store loaded",
		"documents", len(s.documents),
		"users", len(s.users),
		"categories", len(s.categories),
		"notifications", len(s.notifications))

	return s
}

// loadOr is the sole recovery path for corrupt persisted state: any read or
// parse failure yields the fallback, never an error.
func loadOr[T any](s *Store, key string, fallback T) T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("storage read failed, using fallback", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn("stored value unparseable, using fallback", "key", key, "error", err)
		return fallback
	}
	return value
}

func (s *Store) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return internal.NewInternalError("failed to serialize collection", err)
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return internal.NewInternalError("failed to persist collection", err)
	}
	return nil
}

// --- documents ---

func (s *Store) Documents() []documentmodel.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]documentmodel.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

func (s *Store) DocumentByID(id string) (documentmodel.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.documents {
		if d.ID == id {
			return d, true
		}
	}
	return documentmodel.Document{}, false
}

// PrependDocument inserts at the head so the canonical order stays
// newest-first.
func (s *Store) PrependDocument(doc documentmodel.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = append([]documentmodel.Document{doc}, s.documents...)
	return s.save(KeyDocuments, s.documents)
}

func (s *Store) UpdateDocumentStatus(id string, status documentmodel.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents[i].Status = status
			return s.save(KeyDocuments, s.documents)
		}
	}
	return internal.ErrDocumentNotFound
}

// --- users ---

func (s *Store) Users() []usermodel.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]usermodel.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByUsername matches case-insensitively.
func (s *Store) UserByUsername(username string) (usermodel.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folded := strings.ToLower(strings.TrimSpace(username))
	for _, u := range s.users {
		if strings.ToLower(u.Username) == folded {
			return u, true
		}
	}
	return usermodel.User{}, false
}

func (s *Store) UserByID(id string) (usermodel.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return usermodel.User{}, false
}

// AppendUser rejects duplicate usernames (case-insensitive) atomically under
// the store lock, so check and insert cannot interleave.
func (s *Store) AppendUser(u usermodel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	folded := strings.ToLower(u.Username)
	for _, existing := range s.users {
		if strings.ToLower(existing.Username) == folded {
			return internal.ErrDuplicateUsername
		}
	}

	s.users = append(s.users, u)
	return s.save(KeyUsers, s.users)
}

func (s *Store) RemoveUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			if u.Role == usermodel.RoleAdmin {
				return internal.ErrAdminUndeletable
			}
			s.users = append(s.users[:i], s.users[i+1:]...)
			return s.save(KeyUsers, s.users)
		}
	}
	return internal.ErrUserNotFound
}

// --- categories ---

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) HasCategory(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}

// AppendCategory preserves insertion order and rejects exact (case-sensitive)
// duplicates without changing the set.
func (s *Store) AppendCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c == name {
			return internal.ErrDuplicateCategory
		}
	}

	s.categories = append(s.categories, name)
	return s.save(KeyCategories, s.categories)
}

// RemoveCategory deletes the category regardless of documents still
// referencing it; those references stay dangling by design of the registry.
func (s *Store) RemoveCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.save(KeyCategories, s.categories)
		}
	}
	return internal.ErrCategoryNotFound
}

// --- notifications ---

func (s *Store) Notifications() []notificationmodel.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]notificationmodel.Item, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) NotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notifications)
}

func (s *Store) PrependNotification(item notificationmodel.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]notificationmodel.Item{item}, s.notifications...)
	return s.save(KeyNotifications, s.notifications)
}

func (s *Store) ClearNotifications() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = []notificationmodel.Item{}
	return s.save(KeyNotifications, s.notifications)
}

// --- config ---

func (s *Store) Config() sysconfigmodel.SystemConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Store) SetConfig(cfg sysconfigmodel.SystemConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = cfg
	return s.save(KeyConfig, s.config)
}

// --- reset ---

// Reset wipes every persisted key and restores the seed state, the same
// total, unconditional wipe the settings page exposes. Irreversible.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Clear(); err != nil {
		return internal.NewInternalError("failed to clear storage", err)
	}

	s.documents = SeedDocuments()
	s.users = SeedUsers()
	s.categories = SeedCategories()
	s.notifications = []notificationmodel.Item{}
	s.config = SeedConfig()

	s.logger.Info("record store reset to seed state")
	return nil
}

// Flush writes every collection to the KV. The seeder uses it so freshly
// seeded state survives a restart; normal mutations persist themselves.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(KeyDocuments, s.documents); err != nil {
		return err
	}
	if err := s.save(KeyUsers, s.users); err != nil {
		return err
	}
	if err := s.save(KeyCategories, s.categories); err != nil {
		return err
	}
	if err := s.save(KeyNotifications, s.notifications); err != nil {
		return err
	}
	return s.save(KeyConfig, s.config)
}
