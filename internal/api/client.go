// Package api provides the HTTP client for the Votecaster backend.
// This file implements the client with per-request timeouts and bounded
// retries on rate limiting.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 10 * time.Second

	// Rate-limit backoff parameters.
	maxRetries = 4
	baseDelay  = time.Second
)

// Client talks to the Votecaster backend over HTTP.
type Client struct {
	baseURL   string
	authToken string
	hc        *http.Client
	timeout   time.Duration
}

// New creates a Client for the given base URL. The auth token may be empty
// for unauthenticated endpoints.
func New(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		hc:        http.DefaultClient,
		timeout:   defaultRequestTimeout,
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client authenticated with the given
// token. The receiver is unchanged.
func (c *Client) WithToken(token string) *Client {
	derived := *c
	derived.authToken = token
	return &derived
}

// CreatePoll submits a new poll and returns the poll id assigned by the
// backend. The response body is a plain-text identifier; a trailing newline
// is trimmed before it is returned.
func (c *Client) CreatePoll(ctx context.Context, req *CreatePollRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshalling create request: %w", err)
	}
	resp, err := c.request(ctx, http.MethodPost, c.baseURL+"/create", body)
	if err != nil {
		return "", err
	}
	pid := strings.TrimSuffix(string(resp), "\n")
	if pid == "" {
		return "", fmt.Errorf("backend returned an empty poll id")
	}
	return pid, nil
}

// SearchChannels looks up Farcaster channels matching the given free-text
// query. An empty query is passed through; the backend decides whether it
// returns a default set or nothing.
func (c *Client) SearchChannels(ctx context.Context, query string) ([]*Channel, error) {
	u := c.baseURL + "/channels?q=" + url.QueryEscape(query)
	body, err := c.request(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var list ChannelList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("unmarshalling channel list: %w", err)
	}
	return list.Channels, nil
}

// Me fetches the profile of the authenticated user. It is how an access
// token is validated during sign-in.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	body, err := c.request(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		User *Profile `json:"user"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshalling profile: %w", err)
	}
	if envelope.User == nil {
		return nil, fmt.Errorf("backend returned no profile")
	}
	return envelope.User, nil
}

// Poll fetches the full details of a single poll.
func (c *Client) Poll(ctx context.Context, pid string) (*Poll, error) {
	body, err := c.request(ctx, http.MethodGet, c.baseURL+"/poll/info/"+url.PathEscape(pid), nil)
	if err != nil {
		return nil, err
	}
	var poll Poll
	if err := json.Unmarshal(body, &poll); err != nil {
		return nil, fmt.Errorf("unmarshalling poll: %w", err)
	}
	return &poll, nil
}

// ListPolls fetches a page of recent polls.
func (c *Client) ListPolls(ctx context.Context, limit, offset int64) (*PollList, error) {
	u := fmt.Sprintf("%s/rankings/lastElections?limit=%d&offset=%d", c.baseURL, limit, offset)
	body, err := c.request(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var list PollList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("unmarshalling poll list: %w", err)
	}
	return &list, nil
}

// Community fetches a single community by id.
func (c *Client) Community(ctx context.Context, id uint64) (*Community, error) {
	body, err := c.request(ctx, http.MethodGet, fmt.Sprintf("%s/communities/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var community Community
	if err := json.Unmarshal(body, &community); err != nil {
		return nil, fmt.Errorf("unmarshalling community: %w", err)
	}
	return &community, nil
}

// ListCommunities fetches a page of communities.
func (c *Client) ListCommunities(ctx context.Context, limit, offset int64) (*CommunityList, error) {
	u := fmt.Sprintf("%s/communities?limit=%d&offset=%d", c.baseURL, limit, offset)
	body, err := c.request(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var list CommunityList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("unmarshalling community list: %w", err)
	}
	return &list, nil
}

// CreateCommunity registers a new community and returns it as stored by the
// backend.
func (c *Client) CreateCommunity(ctx context.Context, req *CreateCommunityRequest) (*Community, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshalling community request: %w", err)
	}
	resp, err := c.request(ctx, http.MethodPost, c.baseURL+"/communities", body)
	if err != nil {
		return nil, err
	}
	var community Community
	if err := json.Unmarshal(resp, &community); err != nil {
		return nil, fmt.Errorf("unmarshalling community: %w", err)
	}
	return &community, nil
}

// request performs a single HTTP call with the configured timeout and auth
// header. Rate-limited requests (429) are retried with a linear backoff up
// to maxRetries attempts. Any other non-2xx status is returned as an error
// carrying the response body verbatim so callers can surface the backend's
// message to the user.
func (c *Client) request(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		req, err := http.NewRequestWithContext(reqCtx, method, url, bytes.NewReader(body))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.authToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.authToken)
		}

		res, err := c.hc.Do(req)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("performing request: %w", err)
		}

		if res.StatusCode == http.StatusTooManyRequests {
			_ = res.Body.Close()
			cancel()
			select {
			case <-time.After(time.Duration(attempt+1) * baseDelay):
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		respBody, err := io.ReadAll(res.Body)
		_ = res.Body.Close()
		cancel()
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			msg := strings.TrimSpace(string(respBody))
			if msg == "" {
				msg = res.Status
			}
			return nil, fmt.Errorf("%s", msg)
		}
		return respBody, nil
	}
	return nil, fmt.Errorf("request rate limited: exceeded retry limit")
}
