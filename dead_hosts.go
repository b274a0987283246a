package proxymanager

import (
	"context"
	"fmt"
	"net/http"
)

// DeadHostsService manages nginx 404 hosts.
type DeadHostsService struct {
	client *Client
}

// List returns all dead hosts.
func (s *DeadHostsService) List(ctx context.Context, expand []string, query string) ([]DeadHost, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "nginx/dead-hosts"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var hosts []DeadHost
	if err := res.Decode(&hosts); err != nil {
		return nil, nil, err
	}
	return hosts, res.Pagination, nil
}

// Get returns a single dead host by ID.
func (s *DeadHostsService) Get(ctx context.Context, id int, expand []string) (*DeadHost, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("nginx/dead-hosts/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var host DeadHost
	if err := res.Decode(&host); err != nil {
		return nil, err
	}
	return &host, nil
}

// Create adds a new dead host.
func (s *DeadHostsService) Create(ctx context.Context, host DeadHost) (*DeadHost, error) {
	res, err := s.client.do(ctx, http.MethodPost, "nginx/dead-hosts", host, callConfig{})
	if err != nil {
		return nil, err
	}
	var created DeadHost
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing dead host. The identifier is moved
// into the path and stripped from the transmitted body.
func (s *DeadHostsService) Update(ctx context.Context, host DeadHost) (*DeadHost, error) {
	if host.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("nginx/dead-hosts/%d", host.ID)
	host.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, host, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated DeadHost
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a dead host.
func (s *DeadHostsService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("nginx/dead-hosts/%d", id), nil, callConfig{})
	return err
}

// Enable turns a disabled dead host back on.
func (s *DeadHostsService) Enable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/dead-hosts/%d/enable", id), nil, callConfig{})
	return err
}

// Disable turns a dead host off without deleting it.
func (s *DeadHostsService) Disable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/dead-hosts/%d/disable", id), nil, callConfig{})
	return err
}
