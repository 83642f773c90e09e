package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/vaultpass/passvault/internal/crypto"
	"github.com/vaultpass/passvault/internal/model"
	"github.com/vaultpass/passvault/internal/repository"
)

var (
	ErrCredentialFieldsRequired = errors.New("site, username and password are required")
	ErrEmptySite                = errors.New("site cannot be empty")
	ErrEmptyUsername            = errors.New("username cannot be empty")
	ErrEmptyPassword            = errors.New("password cannot be empty")
	ErrCredentialNotFound       = errors.New("credential not found")
	ErrCredentialExists         = errors.New("credential for this site and username already exists")
)

// CredentialStore is the persistence the credential service needs.
type CredentialStore interface {
	Create(ctx context.Context, c *model.Credential) error
	GetByID(ctx context.Context, userID, id int64) (*model.Credential, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Credential, error)
	Update(ctx context.Context, c *model.Credential) error
	Delete(ctx context.Context, userID, id int64) error
}

// CredentialService manages a user's stored site logins. Passwords are sealed
// before they reach the store and only opened by Reveal.
type CredentialService struct {
	store  CredentialStore
	sealer *crypto.Sealer
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(store CredentialStore, sealer *crypto.Sealer) *CredentialService {
	return &CredentialService{store: store, sealer: sealer}
}

// List returns the user's credentials with passwords masked.
func (s *CredentialService) List(ctx context.Context, userID int64) ([]model.CredentialResponse, error) {
	creds, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return credentialsToResponse(creds), nil
}

// Create seals and stores a new credential.
func (s *CredentialService) Create(ctx context.Context, userID int64, req model.CredentialRequest) (model.CreatedResponse, error) {
	if req.Site == "" || req.Username == "" || req.Password == "" {
		return model.CreatedResponse{}, ErrCredentialFieldsRequired
	}

	sealed, err := s.sealer.Seal([]byte(req.Password), ownerAAD(userID))
	if err != nil {
		return model.CreatedResponse{}, err
	}

	c := &model.Credential{
		UserID:         userID,
		Site:           req.Site,
		Username:       req.Username,
		PasswordSealed: sealed,
		Note:           req.Note,
	}

	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return model.CreatedResponse{}, ErrCredentialExists
		}
		return model.CreatedResponse{}, err
	}

	return model.CreatedResponse{ID: c.ID}, nil
}

// Reveal returns a credential with its password decrypted.
func (s *CredentialService) Reveal(ctx context.Context, userID, id int64) (model.RevealResponse, error) {
	c, err := s.get(ctx, userID, id)
	if err != nil {
		return model.RevealResponse{}, err
	}

	plain, err := s.sealer.Open(c.PasswordSealed, ownerAAD(userID))
	if err != nil {
		return model.RevealResponse{}, err
	}

	return model.RevealResponse{
		ID:       c.ID,
		Site:     c.Site,
		Username: c.Username,
		Password: string(plain),
	}, nil
}

// Update applies the fields present in req. A present but empty site,
// username or password is rejected.
func (s *CredentialService) Update(ctx context.Context, userID, id int64, req model.CredentialUpdate) error {
	switch {
	case req.Site != nil && *req.Site == "":
		return ErrEmptySite
	case req.Username != nil && *req.Username == "":
		return ErrEmptyUsername
	case req.Password != nil && *req.Password == "":
		return ErrEmptyPassword
	}

	c, err := s.get(ctx, userID, id)
	if err != nil {
		return err
	}

	if req.Site != nil {
		c.Site = *req.Site
	}
	if req.Username != nil {
		c.Username = *req.Username
	}
	if req.Note != nil {
		c.Note = *req.Note
	}
	if req.Password != nil {
		sealed, err := s.sealer.Seal([]byte(*req.Password), ownerAAD(userID))
		if err != nil {
			return err
		}
		c.PasswordSealed = sealed
	}

	if err := s.store.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return ErrCredentialExists
		}
		return err
	}
	return nil
}

// Delete removes a credential.
func (s *CredentialService) Delete(ctx context.Context, userID, id int64) error {
	err := s.store.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return ErrCredentialNotFound
	}
	return err
}

func (s *CredentialService) get(ctx context.Context, userID, id int64) (*model.Credential, error) {
	c, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	return c, nil
}

// ownerAAD binds a sealed password to its owner so rows cannot be moved
// between users.
func ownerAAD(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}

// credentialsToResponse converts stored credentials to masked dashboard rows.
func credentialsToResponse(creds []model.Credential) []model.CredentialResponse {
	result := make([]model.CredentialResponse, len(creds))
	for i, c := range creds {
		result[i] = model.CredentialResponse{
			ID:        c.ID,
			Site:      c.Site,
			Username:  c.Username,
			Password:  model.MaskedPassword,
			Note:      c.Note,
			CreatedAt: c.CreatedAt,
		}
	}
	return result
}
