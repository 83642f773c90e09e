package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied statement by statement; the driver does not allow
// multiple statements per Exec unless the DSN opts in.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		username   VARCHAR(150) NOT NULL,
		email      VARCHAR(150) NOT NULL,
		auth_hash  VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email),
		KEY ix_users_created_at (created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS credentials (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id         BIGINT NOT NULL,
		site            VARCHAR(255) NOT NULL,
		username        VARCHAR(150) NOT NULL,
		password_sealed VARBINARY(1024) NOT NULL,
		note            TEXT NULL,
		created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_credentials_user_site_username (user_id, site, username),
		KEY ix_credentials_created_at (created_at),
		CONSTRAINT fk_credentials_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	)`,
}

// Migrate creates the tables if they do not exist. Safe to call on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement %d: %w", i, err)
		}
	}
	return nil
}
