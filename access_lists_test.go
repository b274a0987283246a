package proxymanager

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccessListsCreate(t *testing.T) {
	var gotBody AccessList
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/nginx/access-lists" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"name":"office"}`))
	}))
	defer server.Close()

	client := NewClient(WithServerAddr(server.URL))
	created, err := client.AccessLists.Create(context.Background(), AccessList{
		Name:       "office",
		SatisfyAny: true,
		Items:      []AccessListItem{{Username: "alice", Password: "s3cret"}},
		Clients:    []AccessListClient{{Address: "10.0.0.0/8", Directive: "allow"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != 3 {
		t.Errorf("create mismatch: %+v", created)
	}
	if len(gotBody.Items) != 1 || gotBody.Items[0].Username != "alice" {
		t.Errorf("items not transmitted: %+v", gotBody.Items)
	}
	if len(gotBody.Clients) != 1 || gotBody.Clients[0].Directive != "allow" {
		t.Errorf("clients not transmitted: %+v", gotBody.Clients)
	}
}

func TestAccessListsUpdateStripsID(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":3,"name":"office"}`))
	}))
	defer server.Close()

	client := NewClient(WithServerAddr(server.URL))
	if _, err := client.AccessLists.Update(context.Background(), AccessList{ID: 3, Name: "office"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/nginx/access-lists/3" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if _, present := gotBody["id"]; present {
		t.Errorf("body must not carry its own id, got %v", gotBody)
	}
}
