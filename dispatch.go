package proxymanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response headers that signal a paginated dataset. The total-count header
// alone decides whether a response gets the pagination envelope.
const (
	headerDatasetTotal  = "X-Dataset-Total"
	headerDatasetOffset = "X-Dataset-Offset"
	headerDatasetLimit  = "X-Dataset-Limit"
)

// contentPolicy selects how a request body is encoded. The policy is chosen
// by caller intent, never inferred from the payload.
type contentPolicy int

const (
	// contentJSON serializes the body value to a JSON text payload.
	contentJSON contentPolicy = iota

	// contentMultipart passes the body through unmodified; the caller
	// supplies the multipart content type including its boundary.
	contentMultipart
)

// callConfig is the per-call configuration recognized by the dispatcher.
type callConfig struct {
	policy      contentPolicy
	contentType string        // required for contentMultipart
	timeout     time.Duration // 0 = client default
}

// Pagination is the dataset metadata extracted from response headers.
type Pagination struct {
	Total  int
	Offset int
	Limit  int
}

// Result is the normalized outcome of a successful call. Pagination is nil
// when the response did not carry the dataset headers; Data is the raw body
// either way, so callers decode it the same in both cases.
type Result struct {
	Data       json.RawMessage
	Pagination *Pagination
	Status     int
}

// Decode unmarshals the response body into v. A nil body is a no-op.
func (r *Result) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// do issues a single HTTP request and normalizes the response. Every API
// call except the raw certificate upload goes through here.
//
// The current token is read from the store before each call; a missing
// token is not an error at this layer — the literal value "null" is sent
// and the server's 401 drives the failure.
func (c *Client) do(ctx context.Context, method, path string, body any, cfg callConfig) (*Result, error) {
	var bodyReader io.Reader
	contentType := cfg.contentType

	switch cfg.policy {
	case contentMultipart:
		r, ok := body.(io.Reader)
		if !ok {
			return nil, fmt.Errorf("multipart body must be an io.Reader, got %T", body)
		}
		bodyReader = r
	default:
		if body != nil {
			jsonBody, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			bodyReader = bytes.NewReader(jsonBody)
			contentType = "application/json; charset=UTF-8"
		}
	}

	timeout := cfg.timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, c.apiURL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.bearer())
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(method, "error", start)
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		// Transport-level failure: network error or timeout. Fixed code 400.
		return nil, &APIError{Message: err.Error(), Code: http.StatusBadRequest}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.observe(method, "error", start)
		return nil, &APIError{Message: err.Error(), Code: http.StatusBadRequest}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.observe(method, "error", start)
		apiErr := normalizeError(httpResp, respBody)
		c.logger.Warn("request rejected",
			"method", method, "path", path,
			"status", httpResp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	c.observe(method, "ok", start)

	res := &Result{Data: respBody, Status: httpResp.StatusCode}
	if total := httpResp.Header.Get(headerDatasetTotal); total != "" {
		res.Pagination = &Pagination{
			Total:  parseIntHeader(total),
			Offset: parseIntHeader(httpResp.Header.Get(headerDatasetOffset)),
			Limit:  parseIntHeader(httpResp.Header.Get(headerDatasetLimit)),
		}
	}
	return res, nil
}

// upload is the dedicated raw multipart upload path. It skips content
// negotiation and pagination parsing entirely and returns the plain
// response text. Kept separate from do on purpose: the two certificate
// upload endpoints answer with different shapes.
func (c *Client) upload(ctx context.Context, path string, form io.Reader, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(path), form)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "Bearer "+c.bearer())
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(http.MethodPost, "error", start)
		return "", &APIError{Message: err.Error(), Code: http.StatusBadRequest}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.observe(http.MethodPost, "error", start)
		return "", &APIError{Message: err.Error(), Code: http.StatusBadRequest}
	}

	if httpResp.StatusCode != http.StatusOK && httpResp.StatusCode != http.StatusCreated {
		c.observe(http.MethodPost, "error", start)
		return "", &APIError{
			Message: fmt.Sprintf("upload failed with status %d", httpResp.StatusCode),
			Debug:   string(respBody),
			Code:    httpResp.StatusCode,
		}
	}

	c.observe(http.MethodPost, "ok", start)
	return string(respBody), nil
}

// normalizeError maps a non-2xx response into an APIError. A parseable
// {error:{message,code}} envelope wins; anything else falls back to the
// generic transport text with code 400.
func normalizeError(resp *http.Response, body []byte) *APIError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		code := envelope.Error.Code
		if code == 0 {
			code = http.StatusInternalServerError
		}
		return &APIError{
			Message: envelope.Error.Message,
			Debug:   string(body),
			Code:    code,
		}
	}
	return &APIError{
		Message: resp.Status,
		Debug:   string(body),
		Code:    http.StatusBadRequest,
	}
}

// bearer resolves the Authorization header value. The literal string "null"
// is substituted when no token is held, matching the wire contract.
func (c *Client) bearer() string {
	if t, ok := c.tokens.Current(); ok && t.Token != "" {
		return t.Token
	}
	return "null"
}

// apiURL composes the absolute request target from the fixed API root and a
// resource-relative path.
func (c *Client) apiURL(path string) string {
	return strings.TrimRight(c.serverAddr, "/") + "/api/" + strings.TrimPrefix(path, "/")
}

func (c *Client) observe(method, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RequestsTotal.WithLabelValues(method, status).Inc()
	c.metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func parseIntHeader(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

// listQuery builds the query string for list calls: relation names joined
// with commas under expand=, the raw filter under query=. url.Values takes
// care of the percent-encoding.
func listQuery(expand []string, query string) string {
	v := url.Values{}
	if len(expand) > 0 {
		v.Set("expand", strings.Join(expand, ","))
	}
	if query != "" {
		v.Set("query", query)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// expandQuery builds the query string for single-resource fetches.
func expandQuery(expand []string) string {
	if len(expand) == 0 {
		return ""
	}
	v := url.Values{}
	v.Set("expand", strings.Join(expand, ","))
	return "?" + v.Encode()
}
