package proxymanager

import (
	"context"
	"fmt"
	"net/http"
)

// AccessListsService manages access lists.
type AccessListsService struct {
	client *Client
}

// List returns all access lists.
func (s *AccessListsService) List(ctx context.Context, expand []string, query string) ([]AccessList, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "nginx/access-lists"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var lists []AccessList
	if err := res.Decode(&lists); err != nil {
		return nil, nil, err
	}
	return lists, res.Pagination, nil
}

// Get returns a single access list by ID.
func (s *AccessListsService) Get(ctx context.Context, id int, expand []string) (*AccessList, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("nginx/access-lists/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var list AccessList
	if err := res.Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create adds a new access list.
func (s *AccessListsService) Create(ctx context.Context, list AccessList) (*AccessList, error) {
	res, err := s.client.do(ctx, http.MethodPost, "nginx/access-lists", list, callConfig{})
	if err != nil {
		return nil, err
	}
	var created AccessList
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing access list. The identifier is moved
// into the path and stripped from the transmitted body.
func (s *AccessListsService) Update(ctx context.Context, list AccessList) (*AccessList, error) {
	if list.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("nginx/access-lists/%d", list.ID)
	list.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, list, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated AccessList
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an access list.
func (s *AccessListsService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("nginx/access-lists/%d", id), nil, callConfig{})
	return err
}
