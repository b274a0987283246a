package proxymanager

import (
	"context"
	"net/http"
)

// TokensService handles authentication. These are the only operations that
// write to the token store; everything else only reads from it.
type TokensService struct {
	client *Client
}

// loginRequest is the credential payload for Login.
type loginRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// Login exchanges credentials for a bearer token and pushes it onto the
// store. With wipe set, all previously stored tokens are cleared first.
// A response without a token clears the store and fails with ErrNoToken.
func (s *TokensService) Login(ctx context.Context, identity, secret string, wipe bool) (*Token, error) {
	res, err := s.client.do(ctx, http.MethodPost, "tokens", loginRequest{Identity: identity, Secret: secret}, callConfig{})
	if err != nil {
		return nil, err
	}

	var tok Token
	if err := res.Decode(&tok); err != nil {
		return nil, err
	}
	if tok.Token == "" {
		s.client.tokens.ClearAll()
		return nil, &AuthError{Op: "login"}
	}

	if wipe {
		s.client.tokens.ClearAll()
	}
	s.client.tokens.Add(tok)
	return &tok, nil
}

// Refresh exchanges the current token for a fresh one and overwrites the
// topmost store entry. A response without a token clears the store and
// fails with ErrNoToken.
func (s *TokensService) Refresh(ctx context.Context) (*Token, error) {
	res, err := s.client.do(ctx, http.MethodGet, "tokens", nil, callConfig{})
	if err != nil {
		return nil, err
	}

	var tok Token
	if err := res.Decode(&tok); err != nil {
		return nil, err
	}
	if tok.Token == "" {
		s.client.tokens.ClearAll()
		return nil, &AuthError{Op: "refresh"}
	}

	s.client.tokens.SetCurrent(tok)
	return &tok, nil
}
