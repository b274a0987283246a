package proxymanager

import (
	"context"
	"fmt"
	"net/http"
)

// UsersService manages backend accounts.
type UsersService struct {
	client *Client
}

// List returns all users. expand names relations to include; query is a raw
// filter string passed to the backend.
func (s *UsersService) List(ctx context.Context, expand []string, query string) ([]User, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "users"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var users []User
	if err := res.Decode(&users); err != nil {
		return nil, nil, err
	}
	return users, res.Pagination, nil
}

// Get returns a single user by ID.
func (s *UsersService) Get(ctx context.Context, id int, expand []string) (*User, error) {
	res, err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("users/%d%s", id, expandQuery(expand)), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var user User
	if err := res.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the account the current token belongs to.
func (s *UsersService) Me(ctx context.Context, expand []string) (*User, error) {
	res, err := s.client.do(ctx, http.MethodGet, "users/me"+expandQuery(expand), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var user User
	if err := res.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create adds a new user.
func (s *UsersService) Create(ctx context.Context, user User) (*User, error) {
	res, err := s.client.do(ctx, http.MethodPost, "users", user, callConfig{})
	if err != nil {
		return nil, err
	}
	var created User
	if err := res.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update saves changes to an existing user. The identifier is moved into
// the path; the transmitted body never carries its own id field.
func (s *UsersService) Update(ctx context.Context, user User) (*User, error) {
	if user.ID == 0 {
		return nil, ErrMissingID
	}
	path := fmt.Sprintf("users/%d", user.ID)
	user.ID = 0
	res, err := s.client.do(ctx, http.MethodPut, path, user, callConfig{})
	if err != nil {
		return nil, err
	}
	var updated User
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user.
func (s *UsersService) Delete(ctx context.Context, id int) error {
	_, err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("users/%d", id), nil, callConfig{})
	return err
}

// SetPassword changes a user's password. current may be empty when an
// administrator resets another account.
func (s *UsersService) SetPassword(ctx context.Context, id int, current, secret string) error {
	body := map[string]string{
		"type":    "password",
		"current": current,
		"secret":  secret,
	}
	_, err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("users/%d/auth", id), body, callConfig{})
	return err
}

// LoginAs obtains a token for another user. The token is returned but not
// stored; callers decide whether to push it onto the store.
func (s *UsersService) LoginAs(ctx context.Context, id int) (*Token, error) {
	res, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("users/%d/login", id), nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var tok Token
	if err := res.Decode(&tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
