// Package proxymanager provides a Go client for the Nginx Proxy Manager API.
//
// The client exposes one service per backend resource (users, proxy hosts,
// redirection hosts, streams, dead hosts, access lists, audit log, reports,
// tokens). Every call funnels through a single dispatcher that attaches
// bearer-token authentication, negotiates JSON vs multipart payloads,
// extracts pagination metadata from response headers, and converts failures
// into *APIError.
//
// Quick start:
//
//	// Set NPM_SERVER_ADDR env var, or pass WithServerAddr, then:
//	client := proxymanager.NewClient()
//
//	tok, err := client.Tokens.Login(ctx, "admin@example.com", "secret", false)
//	if err != nil {
//	    var apiErr *proxymanager.APIError
//	    if errors.As(err, &apiErr) {
//	        fmt.Printf("login failed [%d]: %s\n", apiErr.Code, apiErr.Message)
//	    }
//	}
//
//	hosts, page, err := client.ProxyHosts.List(ctx, []string{"owner", "certificate"}, "")
//
// Tokens are kept in a TokenStore. The default store is in-memory; the
// tokenstore package provides a SQLite-backed store for callers that need
// logins to survive process restarts.
package proxymanager
