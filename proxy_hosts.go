package proxymanager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ProxyHostsService manages nginx proxy hosts.
type ProxyHostsService struct {
	client *Client
}

// List returns all proxy hosts.
func (s *ProxyHostsService) List(ctx context.Context, expand []string, query string) ([]ProxyHost, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "nginx/proxy-hosts"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var hosts []ProxyHost
	if err := res.Decode(&hosts); err != nil {
		return nil, nil, err
	}
	return hosts, res.Pagination, nil
}

// Get returns a single proxy host by ID.
func (s *ProxyHostsService) Get(ctx context.Context, id int, expand []string) (*ProxyHost, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("nginx/proxy-hosts/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var host ProxyHost
	if err := res.Decode(&host); err != nil {
		return nil, err
	}
	return &host, nil
}

// Create adds a new proxy host.
func (s *ProxyHostsService) Create(ctx context.Context, host ProxyHost) (*ProxyHost, error) {
	res, err := s.client.do(ctx, http.MethodPost, "nginx/proxy-hosts", host, callConfig{})
	if err != nil {
		return nil, err
	}
	var created ProxyHost
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing proxy host. The identifier is moved
// into the path and stripped from the transmitted body.
func (s *ProxyHostsService) Update(ctx context.Context, host ProxyHost) (*ProxyHost, error) {
	if host.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("nginx/proxy-hosts/%d", host.ID)
	host.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, host, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated ProxyHost
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a proxy host.
func (s *ProxyHostsService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("nginx/proxy-hosts/%d", id), nil, callConfig{})
	return err
}

// Enable turns a disabled proxy host back on.
func (s *ProxyHostsService) Enable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/proxy-hosts/%d/enable", id), nil, callConfig{})
	return err
}

// Disable turns a proxy host off without deleting it.
func (s *ProxyHostsService) Disable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/proxy-hosts/%d/disable", id), nil, callConfig{})
	return err
}

// SetCertificates uploads a certificate multipart form through the
// negotiated dispatcher and returns the decoded JSON response. form must be
// a multipart body; contentType carries its boundary (see CertificateForm).
func (s *ProxyHostsService) SetCertificates(ctx context.Context, id int, form io.Reader, contentType string) (json.RawMessage, error) {
	res, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/proxy-hosts/%d/certificates", id), form, callConfig{
		policy:      contentMultipart,
		contentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
