package proxymanager

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUsersList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "expand=permissions" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("X-Dataset-Total", "2")
		w.Header().Set("X-Dataset-Limit", "50")
		w.Write([]byte(`[{"id":1,"name":"Admin"},{"id":2,"name":"Bob"}]`))
	}))
	defer server.Close()

	client := NewClient(WithServerAddr(server.URL))
	users, page, err := client.Users.List(context.Background(), []string{"permissions"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[0].Name != "Admin" {
		t.Errorf("user mismatch: %+v", users[0])
	}
	if page == nil || page.Total != 2 || page.Limit != 50 {
		t.Errorf("pagination mismatch: %+v", page)
	}
}

func TestUsersUpdateStripsID(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":5,"name":"Renamed"}`))
	}))
	defer server.Close()

	client := NewClient(WithServerAddr(server.URL))
	updated, err := client.Users.Update(context.Background(), User{ID: 5, Name: "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/api/users/5" {
		t.Errorf("expected /api/users/5, got %s", gotPath)
	}
	if _, present := gotBody["id"]; present {
		t.Errorf("body must not carry its own id, got %v", gotBody)
	}
	if gotBody["name"] != "Renamed" {
		t.Errorf("body mismatch: %v", gotBody)
	}
	if updated.ID != 5 {
		t.Errorf("expected decoded id 5, got %d", updated.ID)
	}
}

func TestUsersUpdateMissingID(t *testing.T) {
	client := NewClient(WithServerAddr("http://127.0.0.1:1"))
	_, err := client.Users.Update(context.Background(), User{Name: "no id"})
	if !errors.Is(err, ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
}

func TestUsersSetPassword(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`true`))
	}))
	defer server.Close()

	client := NewClient(WithServerAddr(server.URL))
	if err := client.Users.SetPassword(context.Background(), 3, "old", "new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/users/3/auth" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotBody["type"] != "password" || gotBody["current"] != "old" || gotBody["secret"] != "new" {
		t.Errorf("body mismatch: %v", gotBody)
	}
}

func TestUsersLoginAsDoesNotStoreToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/9/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"token":"impersonated","expires":"2026-09-01T00:00:00Z"}`))
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	client := NewClient(WithServerAddr(server.URL), WithTokenStore(store))

	tok, err := client.Users.LoginAs(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Token != "impersonated" {
		t.Errorf("token mismatch: %+v", tok)
	}
	if store.Size() != 0 {
		t.Errorf("LoginAs must not write to the store, size=%d", store.Size())
	}
}
