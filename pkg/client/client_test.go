package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coleLenting/theSpotWeb/pkg/client/session"
)

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "alice@example.com" {
			t.Fatalf("unexpected login body: %v", body)
		}
		_ = json.NewEncoder(w).Encode(AuthResult{
			Token: "tok-123",
			User:  User{ID: "u1", Email: "alice@example.com", Role: "client"},
		})
	}))
	defer srv.Close()

	creds := session.NewStorageCredentials(session.NewMemoryStorage())
	c := New(srv.URL, creds)

	result, err := c.Login(context.Background(), "alice@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token != "tok-123" {
		t.Fatalf("unexpected token: %q", result.Token)
	}
	if creds.Token() != "tok-123" {
		t.Fatalf("token not stored in credential store")
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Fatalf("expected bearer header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(User{ID: "u1", Name: "Alice"})
	}))
	defer srv.Close()

	creds := session.NewStorageCredentials(session.NewMemoryStorage())
	_ = creds.SetToken("tok-abc")

	c := New(srv.URL, creds)
	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClient_DecodesErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message envelope", http.StatusUnauthorized, `{"message":"Invalid credentials."}`, "Invalid credentials."},
		{"detailed envelope", http.StatusConflict, `{"error":"Conflict: Duplicate field","details":"email already exists."}`, "Conflict: Duplicate field: email already exists."},
		{"server envelope", http.StatusInternalServerError, `{"error":"Something went wrong on the server.","message":"internal server error"}`, "internal server error"},
		{"empty body", http.StatusBadGateway, ``, "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, nil)
			_, err := c.GetItem(context.Background(), "whatever")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, apiErr.StatusCode)
			}
			if apiErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, apiErr.Message)
			}
		})
	}
}

func TestClient_ListItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/items" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "5" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(ItemPage{
			Data:       []Item{{ID: "m1", Title: "Heat"}},
			Pagination: Pagination{Total: 11, Page: 2, Limit: 5, TotalPages: 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	page, err := c.ListItems(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Data) != 1 || page.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestClient_DeleteAccountClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Your account has been permanently deleted."})
	}))
	defer srv.Close()

	creds := session.NewStorageCredentials(session.NewMemoryStorage())
	_ = creds.SetToken("tok")

	c := New(srv.URL, creds)
	if err := c.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if creds.Token() != "" {
		t.Fatalf("credentials should be cleared after account deletion")
	}
}

func TestClient_CatalogFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, nil)
	items, err := c.Catalog(context.Background())
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if len(items) != len(fallbackCatalog) {
		t.Fatalf("expected the fallback dataset, got %d items", len(items))
	}
	if items[0].Title != "The Matrix" {
		t.Fatalf("unexpected first fallback item: %+v", items[0])
	}
}

func TestClient_CatalogDoesNotMaskAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Something went wrong on the server.","message":"internal server error"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Catalog(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("API-level failures must surface, got %v", err)
	}
}
