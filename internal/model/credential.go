package model

import "time"

// MaskedPassword stands in for a stored password in list responses.
const MaskedPassword = "••••••••"

// Credential is a stored site login. PasswordSealed never leaves the service layer.
type Credential struct {
	ID             int64
	UserID         int64
	Site           string
	Username       string
	PasswordSealed []byte
	Note           string
	CreatedAt      time.Time
}

// CredentialRequest creates a credential.
type CredentialRequest struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
	Note     string `json:"note"`
}

// CredentialUpdate changes only the fields that are present.
type CredentialUpdate struct {
	Site     *string `json:"site"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Note     *string `json:"note"`
}

// CredentialResponse is a dashboard row. Password is always MaskedPassword.
type CredentialResponse struct {
	ID        int64     `json:"id"`
	Site      string    `json:"site"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RevealResponse carries a decrypted password.
type RevealResponse struct {
	ID       int64  `json:"id"`
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatedResponse returns the ID of a new resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
