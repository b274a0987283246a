package proxymanager

import (
	"context"
	"net/http"
)

// AuditLogService reads the change audit trail. The audit log is append-only
// on the backend; this service is list-only.
type AuditLogService struct {
	client *Client
}

// List returns audit log entries.
func (s *AuditLogService) List(ctx context.Context, expand []string, query string) ([]AuditLogEntry, *Pagination, error) {
	res, err := s.client.do(ctx, http.MethodGet, "audit-log"+listQuery(expand, query), nil, callConfig{})
	if err != nil {
		return nil, nil, err
	}
	var entries []AuditLogEntry
	if err := res.Decode(&entries); err != nil {
		return nil, nil, err
	}
	return entries, res.Pagination, nil
}
