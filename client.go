package proxymanager

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strconv"
	"time"
)

// DefaultTimeout is the per-call timeout applied when neither the client nor
// the individual call configures one.
const DefaultTimeout = 15 * time.Second

// Client is the Nginx Proxy Manager API client. One service field per
// backend resource; all of them delegate to the shared dispatcher.
type Client struct {
	serverAddr string
	timeout    time.Duration
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger
	metrics    *Metrics

	Users            *UsersService
	ProxyHosts       *ProxyHostsService
	RedirectionHosts *RedirectionHostsService
	Streams          *StreamsService
	DeadHosts        *DeadHostsService
	AccessLists      *AccessListsService
	AuditLog         *AuditLogService
	Reports          *ReportsService
	Tokens           *TokensService
}

// NewClient creates a new API client.
// It reads configuration from NPM_* environment variables by default.
// Options can be used to override the defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		serverAddr: os.Getenv("NPM_SERVER_ADDR"),
		timeout:    parseDurationEnv("NPM_TIMEOUT", DefaultTimeout),
		tokens:     NewMemoryTokenStore(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		// Cookie jar so backend session cookies ride along with the bearer
		// token, matching the browser client's include-credentials mode.
		jar, _ := cookiejar.New(nil)
		c.httpClient = &http.Client{Jar: jar}
	}

	c.Users = &UsersService{client: c}
	c.ProxyHosts = &ProxyHostsService{client: c}
	c.RedirectionHosts = &RedirectionHostsService{client: c}
	c.Streams = &StreamsService{client: c}
	c.DeadHosts = &DeadHostsService{client: c}
	c.AccessLists = &AccessListsService{client: c}
	c.AuditLog = &AuditLogService{client: c}
	c.Reports = &ReportsService{client: c}
	c.Tokens = &TokensService{client: c}

	return c
}

// TokenStore returns the store this client authenticates from.
func (c *Client) TokenStore() TokenStore {
	return c.tokens
}

func parseDurationEnv(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	// Try parsing as milliseconds (integer), matching the backend's
	// timeout unit.
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	// Try parsing as duration string.
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return defaultVal
}
