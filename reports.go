package proxymanager

import (
	"context"
	"net/http"
)

// ReportsService reads backend summary reports.
type ReportsService struct {
	client *Client
}

// Hosts returns the per-type host count summary.
func (s *ReportsService) Hosts(ctx context.Context) (*HostsReport, error) {
	res, err := s.client.do(ctx, http.MethodGet, "reports/hosts", nil, callConfig{})
	if err != nil {
		return nil, err
	}
	var report HostsReport
	if err := res.Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}
