package proxymanager

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// RedirectionHostsService manages nginx redirection hosts.
type RedirectionHostsService struct {
	client *Client
}

// List returns all redirection hosts.
func (s *RedirectionHostsService) List(ctx context.Context, expand []string, query string) ([]RedirectionHost, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "nginx/redirection-hosts"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var hosts []RedirectionHost
	if err := res.Decode(&hosts); err != nil {
		return nil, nil, err
	}
	return hosts, res.Pagination, nil
}

// Get returns a single redirection host by ID.
func (s *RedirectionHostsService) Get(ctx context.Context, id int, expand []string) (*RedirectionHost, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("nginx/redirection-hosts/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var host RedirectionHost
	if err := res.Decode(&host); err != nil {
		return nil, err
	}
	return &host, nil
}

// Create adds a new redirection host.
func (s *RedirectionHostsService) Create(ctx context.Context, host RedirectionHost) (*RedirectionHost, error) {
	res, err := s.client.do(ctx, http.MethodPost, "nginx/redirection-hosts", host, callConfig{})
	if err != nil {
		return nil, err
	}
	var created RedirectionHost
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing redirection host. The identifier is
// moved into the path and stripped from the transmitted body.
func (s *RedirectionHostsService) Update(ctx context.Context, host RedirectionHost) (*RedirectionHost, error) {
	if host.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("nginx/redirection-hosts/%d", host.ID)
	host.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, host, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated RedirectionHost
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a redirection host.
func (s *RedirectionHostsService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("nginx/redirection-hosts/%d", id), nil, callConfig{})
	return err
}

// Enable turns a disabled redirection host back on.
func (s *RedirectionHostsService) Enable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/redirection-hosts/%d/enable", id), nil, callConfig{})
	return err
}

// Disable turns a redirection host off without deleting it.
func (s *RedirectionHostsService) Disable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/redirection-hosts/%d/disable", id), nil, callConfig{})
	return err
}

// UploadCertificates sends a certificate multipart form over the dedicated
// raw upload path and returns the plain response text. Unlike the proxy
// host variant this skips JSON content negotiation and pagination parsing
// entirely; the two endpoints answer with different shapes and are kept as
// distinct operations.
func (s *RedirectionHostsService) UploadCertificates(ctx context.Context, id int, form io.Reader, contentType string) (string, error) {
	return s.client.upload(ctx, fmt.Sprintf("nginx/redirection-hosts/%d/certificates", id), form, contentType)
}
