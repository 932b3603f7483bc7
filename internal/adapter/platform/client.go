package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

// Client issues authenticated form-encoded POST requests against the
// advertising platform's graph API and normalizes its success/error
// envelope. Remote 4xx/5xx responses never surface as Go errors; they are
// translated into a Result with OK=false. Only transport-level failures
// (DNS, TLS, connection reset) propagate as errors. No retries happen
// here; retry policy is the caller's responsibility.
type Client struct {
	base    string
	version string
	http    *http.Client
}

// NewClient builds a Client from configuration. The zero timeout of the
// embedded http.Client is replaced by the configured one.
func NewClient(cfg configs.Meta) *Client {
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL.String(), "/"),
		version: cfg.Version,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Result is the normalized outcome of one platform call.
type Result struct {
	OK           bool
	ExternalID   string
	ErrorMessage string
	ErrorCode    string
}

// graphEnvelope covers the response shapes the client cares about: an id
// on creation, a success flag on mutation, or a structured error.
type graphEnvelope struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   *struct {
		Message string      `json:"message"`
		Type    string      `json:"type"`
		Code    json.Number `json:"code"`
	} `json:"error"`
}

// Post sends one form-encoded POST to {base}/{version}/{path} with the
// access token appended and decodes the JSON envelope.
func (c *Client) Post(ctx context.Context, path string, params url.Values, token string) (Result, error) {
	form := url.Values{}
	for k, vs := range params {
		form[k] = vs
	}
	form.Set("access_token", token)

	endpoint := fmt.Sprintf("%s/%s/%s", c.base, c.version, strings.TrimLeft(path, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	var env graphEnvelope
	if err = json.Unmarshal(body, &env); err != nil {
		// A non-JSON body with a failing status is still a platform
		// rejection, not a transport failure.
		if resp.StatusCode >= 400 {
			return Result{ErrorMessage: strings.TrimSpace(string(body)), ErrorCode: strconv.Itoa(resp.StatusCode)}, nil
		}
		return Result{}, err
	}

	if env.Error != nil {
		return Result{ErrorMessage: env.Error.Message, ErrorCode: env.Error.Code.String()}, nil
	}
	// A failing status with a JSON body that lacks the error envelope is
	// still a rejection; success is only ever a 2xx.
	if resp.StatusCode >= 400 {
		return Result{ErrorMessage: strings.TrimSpace(string(body)), ErrorCode: strconv.Itoa(resp.StatusCode)}, nil
	}
	return Result{OK: true, ExternalID: env.ID}, nil
}

// asErr converts a failed Result into a *port.PlatformError for callers
// working above the envelope level.
func asErr(res Result) error {
	return &port.PlatformError{Code: res.ErrorCode, Message: res.ErrorMessage}
}
