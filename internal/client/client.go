// Package client is a Go client for the passvault HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vaultpass/passvault/internal/model"
)

const defaultUserAgent = "passvault-client"

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("passvault api: %d %s", e.StatusCode, e.Message)
}

// Client talks to one passvault API. Calls that need a user take its access
// token explicitly so one Client can serve many users.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	var out model.UserResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &out)
	return out, err
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out model.RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me returns the user the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (model.UserResponse, error) {
	var out model.UserResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, &out)
	return out, err
}

// ListCredentials returns the user's credentials with masked passwords.
func (c *Client) ListCredentials(ctx context.Context, token string) ([]model.CredentialResponse, error) {
	var out []model.CredentialResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/credentials", token, nil, &out)
	return out, err
}

// CreateCredential stores a credential and returns its ID.
func (c *Client) CreateCredential(ctx context.Context, token string, req model.CredentialRequest) (int64, error) {
	var out model.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/credentials", token, req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// RevealCredential returns a credential with its password in clear.
func (c *Client) RevealCredential(ctx context.Context, token string, id int64) (model.RevealResponse, error) {
	var out model.RevealResponse
	err := c.do(ctx, http.MethodGet, credentialPath(id)+"/reveal", token, nil, &out)
	return out, err
}

// UpdateCredential changes the fields set in req.
func (c *Client) UpdateCredential(ctx context.Context, token string, id int64, req model.CredentialUpdate) error {
	return c.do(ctx, http.MethodPut, credentialPath(id), token, req, nil)
}

// DeleteCredential removes a credential.
func (c *Client) DeleteCredential(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, credentialPath(id), token, nil, nil)
}

// Generate asks the server for a password.
func (c *Client) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	var out model.GenerateResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/generate", "", req, &out)
	return out, err
}

func credentialPath(id int64) string {
	return "/api/v1/credentials/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
