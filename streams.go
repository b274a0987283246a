package proxymanager

import (
	"context"
	"fmt"
	"net/http"
)

// StreamsService manages nginx TCP/UDP streams.
type StreamsService struct {
	client *Client
}

// List returns all streams.
func (s *StreamsService) List(ctx context.Context, expand []string, query string) ([]Stream, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "nginx/streams"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var streams []Stream
	if err := res.Decode(&streams); err != nil {
		return nil, nil, err
	}
	return streams, res.Pagination, nil
}

// Get returns a single stream by ID.
func (s *StreamsService) Get(ctx context.Context, id int, expand []string) (*Stream, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("nginx/streams/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var stream Stream
	if err := res.Decode(&stream); err != nil {
		return nil, err
	}
	return &stream, nil
}

// Create adds a new stream.
func (s *StreamsService) Create(ctx context.Context, stream Stream) (*Stream, error) {
	res, err := s.client.do(ctx, http.MethodPost, "nginx/streams", stream, callConfig{})
	if err != nil {
		return nil, err
	}
	var created Stream
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing stream. The identifier is moved into
// the path and stripped from the transmitted body.
func (s *StreamsService) Update(ctx context.Context, stream Stream) (*Stream, error) {
	if stream.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("nginx/streams/%d", stream.ID)
	stream.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, stream, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated Stream
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a stream.
func (s *StreamsService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("nginx/streams/%d", id), nil, callConfig{})
	return err
}

// Enable turns a disabled stream back on.
func (s *StreamsService) Enable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/streams/%d/enable", id), nil, callConfig{})
	return err
}

// Disable turns a stream off without deleting it.
func (s *StreamsService) Disable(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("nginx/streams/%d/disable", id), nil, callConfig{})
	return err
}
