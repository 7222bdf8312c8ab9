package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/chic-attire/storefront-contract-tests/framework"
)

const apiPathPrefix = "/api"

// Session manages communication with the storefront API for one logical
// client. It keeps a cookie jar across requests, standing in for the
// browser-like session affinity the API's token cookie relies on, so a login
// on a Session authenticates every later request made through the same
// Session. A fresh Session is deliberately unauthenticated.
type Session struct {
	apiBaseURL *url.URL
	httpClient *http.Client
	logger     framework.Logger
}

// Response is what a Session call yields once any HTTP response was received
// at all. Transport faults (no response) are returned as errors instead.
type Response struct {
	StatusCode int
	Body       []byte
}

// DecodeJSON unmarshals the response body. A malformed body is a payload
// fault for the caller to classify, not a transport fault.
func (r *Response) DecodeJSON(target interface{}) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("malformed JSON response: %w", err)
	}
	return nil
}

// TruncatedBody returns at most limit bytes of the body for diagnostics.
func (r *Response) TruncatedBody(limit int) string {
	if len(r.Body) <= limit {
		return string(r.Body)
	}
	return string(r.Body[:limit]) + "..."
}

// NewSession creates a Session rooted at baseURL (the API path prefix is
// appended internally). It does not dial anything; the first request does.
// The logger may be nil.
func NewSession(baseURL string, requestTimeout time.Duration, logger framework.Logger) (*Session, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + apiPathPrefix)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Session{
		apiBaseURL: parsed,
		httpClient: &http.Client{Jar: jar, Timeout: requestTimeout},
		logger:     logger,
	}, nil
}

// Get issues a GET to the given path (which may carry a query string)
// relative to the API root.
func (s *Session) Get(ctx context.Context, path string) (*Response, error) {
	return s.do(ctx, http.MethodGet, path, nil)
}

// PostJSON issues a POST with a JSON body. A nil body posts an empty payload.
func (s *Session) PostJSON(ctx context.Context, path string, body interface{}) (*Response, error) {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}
	return s.do(ctx, http.MethodPost, path, data)
}

func (s *Session) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	requestURL := s.apiBaseURL.String() + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.logger.Printf("%s", curlCommand(method, requestURL, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", requestURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", requestURL, err)
	}
	s.logger.Printf("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(data))

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// HasCookie reports whether the jar currently holds a cookie with the given
// name for the API host. The login check uses this to confirm the token
// cookie actually landed.
func (s *Session) HasCookie(name string) bool {
	for _, c := range s.httpClient.Jar.Cookies(s.apiBaseURL) {
		if c.Name == name {
			return true
		}
	}
	return false
}

// curlCommand renders the request as an equivalent curl invocation, so a
// failing check's debug output can be replayed by hand.
func curlCommand(method, requestURL string, body []byte) string {
	parts := []string{"curl", "-X", method, shellescape.Quote(requestURL)}
	if body != nil {
		parts = append(parts,
			"-H", shellescape.Quote("Content-Type: application/json"),
			"-d", shellescape.Quote(string(body)))
	}
	return strings.Join(parts, " ")
}
