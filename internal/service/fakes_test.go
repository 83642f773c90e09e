package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vaultpass/passvault/internal/model"
	"github.com/vaultpass/passvault/internal/repository"
)

type memUserStore struct {
	mu      sync.Mutex
	users   map[int64]*model.User
	nextID  int64
	rehashN int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*model.User)}
}

func (m *memUserStore) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return repository.ErrDuplicateUser
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	stored := *u
	m.users[u.ID] = &stored
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) UpdateAuthHash(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.AuthHash = hash
	m.rehashN++
	return nil
}

type memCredentialStore struct {
	mu     sync.Mutex
	creds  map[int64]*model.Credential
	nextID int64
}

func newMemCredentialStore() *memCredentialStore {
	return &memCredentialStore{creds: make(map[int64]*model.Credential)}
}

func (m *memCredentialStore) duplicate(c *model.Credential) bool {
	for _, existing := range m.creds {
		if existing.ID != c.ID && existing.UserID == c.UserID &&
			existing.Site == c.Site && existing.Username == c.Username {
			return true
		}
	}
	return false
}

func (m *memCredentialStore) Create(_ context.Context, c *model.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.duplicate(c) {
		return repository.ErrDuplicateCredential
	}
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	stored := *c
	m.creds[c.ID] = &stored
	return nil
}

func (m *memCredentialStore) GetByID(_ context.Context, userID, id int64) (*model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrCredentialNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCredentialStore) ListByUser(_ context.Context, userID int64) ([]model.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Credential
	for _, c := range m.creds {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCredentialStore) Update(_ context.Context, c *model.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.creds[c.ID]
	if !ok || existing.UserID != c.UserID {
		return repository.ErrCredentialNotFound
	}
	if m.duplicate(c) {
		return repository.ErrDuplicateCredential
	}
	stored := *c
	m.creds[c.ID] = &stored
	return nil
}

func (m *memCredentialStore) Delete(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[id]
	if !ok || c.UserID != userID {
		return repository.ErrCredentialNotFound
	}
	delete(m.creds, id)
	return nil
}
