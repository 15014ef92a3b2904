// Package client is the typed API-access layer for the movie-rental
// backend: every REST call the UI needs, error decoding included. The
// bearer token lives behind a session.CredentialStore so the storage
// medium can change without touching call sites.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coleLenting/theSpotWeb/pkg/client/session"
)

const defaultTimeout = 15 * time.Second

// User is the sanitized user projection returned by the API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Item is a catalog entry as returned by the API.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	DailyRate   float64 `json:"daily_rate"`
	InStock     bool    `json:"in_stock"`
	ReleaseYear int     `json:"release_year,omitempty"`
	Director    string  `json:"director,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ItemInput carries the writable item fields for create and update.
type ItemInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Genre       string  `json:"genre"`
	DailyRate   float64 `json:"dailyRate"`
	InStock     *bool   `json:"inStock,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Director    string  `json:"director,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// AuthResult is the token + user pair returned by register, login and
// profile updates.
type AuthResult struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ItemPage is one page of the catalog.
type ItemPage struct {
	Data       []Item     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// APIError is a non-2xx response decoded into its message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client talks to the movie-rental REST API.
type Client struct {
	baseURL string
	http    *http.Client
	creds   session.CredentialStore
}

// New builds a Client for the API at baseURL. creds may be nil for
// anonymous, read-only use.
func New(baseURL string, creds session.CredentialStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		creds:   creds,
	}
}

// --- Auth ---

// Register creates a client account and stores the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	c.storeToken(out.Token)
	return &out, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.storeToken(out.Token)
	return &out, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate carries a partial self-update.
type ProfileUpdate struct {
	Name            string `json:"name,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// UpdateProfile updates name/password and stores the reissued token.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPut, "/api/auth/me", update, &out); err != nil {
		return nil, err
	}
	c.storeToken(out.Token)
	return &out, nil
}

// DeleteAccount permanently removes the authenticated account and clears
// the stored credential.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/auth/me", nil, nil); err != nil {
		return err
	}
	if c.creds != nil {
		_ = c.creds.Clear()
	}
	return nil
}

// Logout drops the stored credential. Purely client-side; tokens expire on
// their own.
func (c *Client) Logout() {
	if c.creds != nil {
		_ = c.creds.Clear()
	}
}

// --- Catalog ---

// ListItems fetches one page of the catalog.
func (c *Client) ListItems(ctx context.Context, page, limit int) (*ItemPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ItemPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchItems filters the catalog by title substring and/or exact genre.
func (c *Client) SearchItems(ctx context.Context, title, genre string) ([]Item, error) {
	q := url.Values{}
	if title != "" {
		q.Set("title", title)
	}
	if genre != "" {
		q.Set("genre", genre)
	}
	path := "/api/items/search"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Item
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetItem fetches a single catalog item.
func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItem stores a new catalog item. Admin only.
func (c *Client) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodPost, "/api/items", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem replaces an item's writable fields. Admin only.
func (c *Client) UpdateItem(ctx context.Context, id string, input ItemInput) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodPut, "/api/items/"+url.PathEscape(id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes an item. Admin only.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+url.PathEscape(id), nil, nil)
}

// --- Users ---

// MakeAdmin promotes a user to admin. Admin only.
func (c *Client) MakeAdmin(ctx context.Context, id string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users/"+url.PathEscape(id)+"/make-admin", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --- plumbing ---

func (c *Client) storeToken(token string) {
	if c.creds != nil && token != "" {
		_ = c.creds.SetToken(token)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the server's message from any of the error
// envelopes: {"message"}, {"error","details"} or {"error","message"}.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Details != "":
			msg = envelope.Error + ": " + envelope.Details
		case envelope.Message != "":
			msg = envelope.Message
		case envelope.Error != "":
			msg = envelope.Error
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
