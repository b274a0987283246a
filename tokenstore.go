package proxymanager

import "sync"

// Token is an opaque bearer credential issued by the backend.
type Token struct {
	// Token is the raw bearer value sent in the Authorization header.
	Token string `json:"token"`

	// Expires is the expiry timestamp as reported by the backend.
	Expires string `json:"expires,omitempty"`
}

// TokenStore holds the stack of bearer tokens the client authenticates with.
// The dispatcher only ever reads the current (topmost) token; writes happen
// exclusively in the Tokens service during login and refresh.
//
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// Current returns the topmost token, or false when the store is empty.
	Current() (Token, bool)

	// SetCurrent replaces the topmost token. On an empty store it behaves
	// like Add.
	SetCurrent(Token)

	// Add pushes a token onto the stack, making it current.
	Add(Token)

	// ClearAll removes every stored token.
	ClearAll()
}

// MemoryTokenStore implements TokenStore with an in-memory stack.
// It is the default store for a new Client and the substitute of choice
// in tests.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	stack []Token
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Current returns the topmost token, or false when none is held.
func (s *MemoryTokenStore) Current() (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.stack) == 0 {
		return Token{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// SetCurrent replaces the topmost token, or pushes when the store is empty.
func (s *MemoryTokenStore) SetCurrent(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) == 0 {
		s.stack = append(s.stack, t)
		return
	}
	s.stack[len(s.stack)-1] = t
}

// Add pushes a token onto the stack.
func (s *MemoryTokenStore) Add(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = append(s.stack, t)
}

// ClearAll removes every stored token.
func (s *MemoryTokenStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = nil
}

// Size returns the number of stored tokens. Useful for testing.
func (s *MemoryTokenStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stack)
}

// Compile-time interface verification.
var _ TokenStore = (*MemoryTokenStore)(nil)
