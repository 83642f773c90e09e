package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passvault/internal/model"
)

var (
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrDuplicateCredential = errors.New("credential for this site and username already exists")
)

const credentialColumns = `id, user_id, site, username, password_sealed, COALESCE(note, ''), created_at`

// CredentialRepository handles credential persistence. Every query is scoped
// to the owning user.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts c and sets its generated ID.
func (r *CredentialRepository) Create(ctx context.Context, c *model.Credential) error {
	query := `INSERT INTO credentials (user_id, site, username, password_sealed, note) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, c.UserID, c.Site, c.Username, c.PasswordSealed, c.Note)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCredential
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

// GetByID retrieves one credential owned by userID.
func (r *CredentialRepository) GetByID(ctx context.Context, userID, id int64) (*model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = ? AND user_id = ?`

	c := &model.Credential{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Site, &c.Username, &c.PasswordSealed, &c.Note, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}

	return c, nil
}

// ListByUser retrieves all credentials for a user, newest first.
func (r *CredentialRepository) ListByUser(ctx context.Context, userID int64) ([]model.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Site, &c.Username, &c.PasswordSealed, &c.Note, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Update writes every mutable field of c. The row must belong to c.UserID.
func (r *CredentialRepository) Update(ctx context.Context, c *model.Credential) error {
	query := `UPDATE credentials SET site = ?, username = ?, password_sealed = ?, note = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, c.Site, c.Username, c.PasswordSealed, c.Note, c.ID, c.UserID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateCredential
		}
		return err
	}
	return nil
}

// Delete removes a credential owned by userID.
func (r *CredentialRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
