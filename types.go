package proxymanager

import "encoding/json"

// User is a backend account.
type User struct {
	ID         int      `json:"id,omitempty"`
	Name       string   `json:"name"`
	Nickname   string   `json:"nickname,omitempty"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles,omitempty"`
	IsDisabled bool     `json:"is_disabled,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
	CreatedOn  string   `json:"created_on,omitempty"`
	ModifiedOn string   `json:"modified_on,omitempty"`

	// Expanded relations, present when requested via expand.
	Permissions json.RawMessage `json:"permissions,omitempty"`
}

// ProxyHost forwards incoming traffic for a set of domains to an upstream.
type ProxyHost struct {
	ID                    int            `json:"id,omitempty"`
	DomainNames           []string       `json:"domain_names"`
	ForwardScheme         string         `json:"forward_scheme"`
	ForwardHost           string         `json:"forward_host"`
	ForwardPort           int            `json:"forward_port"`
	AccessListID          int            `json:"access_list_id,omitempty"`
	CertificateID         int            `json:"certificate_id,omitempty"`
	SSLForced             bool           `json:"ssl_forced,omitempty"`
	HSTSEnabled           bool           `json:"hsts_enabled,omitempty"`
	HSTSSubdomains        bool           `json:"hsts_subdomains,omitempty"`
	HTTP2Support          bool           `json:"http2_support,omitempty"`
	BlockExploits         bool           `json:"block_exploits,omitempty"`
	CachingEnabled        bool           `json:"caching_enabled,omitempty"`
	AllowWebsocketUpgrade bool           `json:"allow_websocket_upgrade,omitempty"`
	AdvancedConfig        string         `json:"advanced_config,omitempty"`
	Enabled               bool           `json:"enabled,omitempty"`
	Meta                  map[string]any `json:"meta,omitempty"`
	CreatedOn             string         `json:"created_on,omitempty"`
	ModifiedOn            string         `json:"modified_on,omitempty"`

	Owner       json.RawMessage `json:"owner,omitempty"`
	Certificate json.RawMessage `json:"certificate,omitempty"`
	AccessList  json.RawMessage `json:"access_list,omitempty"`
}

// RedirectionHost answers requests for a set of domains with a redirect.
type RedirectionHost struct {
	ID                int            `json:"id,omitempty"`
	DomainNames       []string       `json:"domain_names"`
	ForwardHTTPCode   int            `json:"forward_http_code"`
	ForwardScheme     string         `json:"forward_scheme"`
	ForwardDomainName string         `json:"forward_domain_name"`
	PreservePath      bool           `json:"preserve_path,omitempty"`
	CertificateID     int            `json:"certificate_id,omitempty"`
	SSLForced         bool           `json:"ssl_forced,omitempty"`
	HSTSEnabled       bool           `json:"hsts_enabled,omitempty"`
	HSTSSubdomains    bool           `json:"hsts_subdomains,omitempty"`
	HTTP2Support      bool           `json:"http2_support,omitempty"`
	BlockExploits     bool           `json:"block_exploits,omitempty"`
	AdvancedConfig    string         `json:"advanced_config,omitempty"`
	Enabled           bool           `json:"enabled,omitempty"`
	Meta              map[string]any `json:"meta,omitempty"`
	CreatedOn         string         `json:"created_on,omitempty"`
	ModifiedOn        string         `json:"modified_on,omitempty"`

	Owner       json.RawMessage `json:"owner,omitempty"`
	Certificate json.RawMessage `json:"certificate,omitempty"`
}

// Stream forwards a raw TCP or UDP port to an upstream.
type Stream struct {
	ID             int            `json:"id,omitempty"`
	IncomingPort   int            `json:"incoming_port"`
	ForwardingHost string         `json:"forwarding_host"`
	ForwardingPort int            `json:"forwarding_port"`
	TCPForwarding  bool           `json:"tcp_forwarding,omitempty"`
	UDPForwarding  bool           `json:"udp_forwarding,omitempty"`
	Enabled        bool           `json:"enabled,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedOn      string         `json:"created_on,omitempty"`
	ModifiedOn     string         `json:"modified_on,omitempty"`

	Owner json.RawMessage `json:"owner,omitempty"`
}

// DeadHost answers requests for a set of domains with a 404 page.
type DeadHost struct {
	ID             int            `json:"id,omitempty"`
	DomainNames    []string       `json:"domain_names"`
	CertificateID  int            `json:"certificate_id,omitempty"`
	SSLForced      bool           `json:"ssl_forced,omitempty"`
	HSTSEnabled    bool           `json:"hsts_enabled,omitempty"`
	HSTSSubdomains bool           `json:"hsts_subdomains,omitempty"`
	HTTP2Support   bool           `json:"http2_support,omitempty"`
	AdvancedConfig string         `json:"advanced_config,omitempty"`
	Enabled        bool           `json:"enabled,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedOn      string         `json:"created_on,omitempty"`
	ModifiedOn     string         `json:"modified_on,omitempty"`

	Owner       json.RawMessage `json:"owner,omitempty"`
	Certificate json.RawMessage `json:"certificate,omitempty"`
}

// AccessList restricts host access by credentials or client address.
type AccessList struct {
	ID         int                `json:"id,omitempty"`
	Name       string             `json:"name"`
	SatisfyAny bool               `json:"satisfy_any,omitempty"`
	PassAuth   bool               `json:"pass_auth,omitempty"`
	Items      []AccessListItem   `json:"items,omitempty"`
	Clients    []AccessListClient `json:"clients,omitempty"`
	Meta       map[string]any     `json:"meta,omitempty"`
	CreatedOn  string             `json:"created_on,omitempty"`
	ModifiedOn string             `json:"modified_on,omitempty"`

	Owner json.RawMessage `json:"owner,omitempty"`
}

// AccessListItem is a username/password entry in an access list.
type AccessListItem struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// AccessListClient is an address rule in an access list.
type AccessListClient struct {
	Address   string `json:"address"`
	Directive string `json:"directive"` // allow or deny
}

// AuditLogEntry records a change made through the API.
type AuditLogEntry struct {
	ID         int            `json:"id"`
	UserID     int            `json:"user_id"`
	ObjectType string         `json:"object_type"`
	ObjectID   int            `json:"object_id"`
	Action     string         `json:"action"`
	Meta       map[string]any `json:"meta,omitempty"`
	CreatedOn  string         `json:"created_on,omitempty"`

	User json.RawMessage `json:"user,omitempty"`
}

// HostsReport is the per-type host count summary.
type HostsReport struct {
	Proxy       int `json:"proxy"`
	Redirection int `json:"redirection"`
	Stream      int `json:"stream"`
	Dead        int `json:"dead"`
}
