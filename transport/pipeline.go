// Package transport funnels every backend call through a single place:
// request construction, execution with a bounded timeout, typed response
// decoding, and failure classification.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/myshop/go-client/apierrors"
	"github.com/myshop/go-client/credentials"
)

const (
	// requestTimeout bounds a single round trip. resourceTimeout caps the
	// whole transfer including large payloads.
	requestTimeout  = 30 * time.Second
	resourceTimeout = 60 * time.Second
)

// RequestDescriptor describes one outbound call. Built fresh per call,
// immutable once built, never reused.
type RequestDescriptor struct {
	Method string
	Path   string
	Body   any
}

// Pipeline executes backend requests. It is constructed once at startup and
// injected into every collaborator that performs network calls; there is no
// package-level shared instance.
//
// The pipeline attaches the *currently stored* access token and never
// refreshes it itself. Callers hitting protected routes ask the session
// manager for a valid token first.
type Pipeline struct {
	baseURL    *url.URL
	httpClient *http.Client
	creds      *credentials.Credentials
}

// PipelineOption modifies a Pipeline during construction.
type PipelineOption func(*Pipeline)

// WithHTTPClient replaces the default HTTP client (primarily for testing).
func WithHTTPClient(client *http.Client) PipelineOption {
	return func(p *Pipeline) {
		p.httpClient = client
	}
}

// NewPipeline validates baseURL and builds the pipeline.
func NewPipeline(baseURL string, creds *credentials.Credentials, options ...PipelineOption) (*Pipeline, error) {
	if creds == nil {
		return nil, errors.New("[NewPipeline] credentials are required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, apierrors.InvalidURL()
	}

	pipeline := &Pipeline{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: resourceTimeout},
		creds:      creds,
	}

	for _, opt := range options {
		opt(pipeline)
	}

	return pipeline, nil
}

// newRequest builds the outbound *http.Request for a descriptor: JSON
// content type, the device id header on every call (guest flows key off
// it), and a bearer header when an access token is currently stored.
func (p *Pipeline) newRequest(ctx context.Context, desc RequestDescriptor) (*http.Request, error) {
	target, err := p.baseURL.Parse(desc.Path)
	if err != nil {
		return nil, apierrors.InvalidURL()
	}

	var body io.Reader
	if desc.Body != nil {
		encoded, err := json.Marshal(desc.Body)
		if err != nil {
			return nil, errors.Wrap(err, "[newRequest] marshal body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, target.String(), body)
	if err != nil {
		return nil, apierrors.InvalidURL()
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", p.creds.DeviceID())
	if token := p.creds.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// Execute performs a single call described by desc and decodes the response
// body into T. No internal retry: a timed-out or failed request surfaces a
// classified error and the caller decides what to do.
func Execute[T any](ctx context.Context, p *Pipeline, desc RequestDescriptor) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := p.newRequest(ctx, desc)
	if err != nil {
		return zero, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", desc.Method).Str("path", desc.Path).Msg("Request transport failure")
		return zero, apierrors.FromTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apierrors.FromTransport(err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Debug().Int("status", resp.StatusCode).Str("method", desc.Method).Str("path", desc.Path).Msg("Request rejected")
		return zero, apierrors.Classify(resp.StatusCode, data)
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Debug().Err(err).Str("path", desc.Path).Msg("Response decode failure")
		return zero, apierrors.DecodingError()
	}

	return decoded, nil
}

// ExecuteStatus performs the call and returns only the HTTP status code for
// 2xx responses; non-2xx and transport failures classify as in Execute.
// Used by probes that care about reachability, not the body.
func ExecuteStatus(ctx context.Context, p *Pipeline, desc RequestDescriptor) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := p.newRequest(ctx, desc)
	if err != nil {
		return 0, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, apierrors.FromTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, apierrors.FromTransport(err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return resp.StatusCode, apierrors.Classify(resp.StatusCode, data)
	}

	return resp.StatusCode, nil
}
