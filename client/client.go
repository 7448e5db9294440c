package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"equipment-tracker/feature/tracker/models"
)

// maxTransactions mirrors the server's cap on the transaction list.
const maxTransactions = 50

// Client-observed error conditions.
var (
	// ErrNetworkFailure marks a transport error; the optimistic patch has
	// been rolled back and the user must re-trigger the action.
	ErrNetworkFailure = errors.New("network failure")
	// ErrNotSynced marks an identifier-dependent operation attempted on a
	// transaction the store has not assigned a row yet.
	ErrNotSynced = errors.New("transaction not yet synced")
)

// RemoteError is a failure reported by the server in a structured error
// response.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server rejected request: %s", e.Message)
}

// Doer abstracts the HTTP transport so tests can inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds configuration for a tracker client.
type Config struct {
	// Endpoint is the base URL of the tracker API, e.g.
	// "http://localhost:8080/api".
	Endpoint string
	// ApiKey is sent in the X-Api-Key header when non-empty.
	ApiKey string
	// HTTPClient is the transport; defaults to an http.Client with a 30s
	// timeout.
	HTTPClient Doer
	// OnChange is invoked, while the sync cycle holds the client lock,
	// every time the cache changes: after the optimistic apply, after a
	// rollback, and after an authoritative pull. Consumers render from it.
	OnChange func(*Cache)
}

// Client holds the local state cache and runs the optimistic sync protocol
// against the tracker server. Sync cycles are serialized per client: one
// action completes its snapshot-apply-commit-resolve cycle before the next
// begins, so two cycles can never clobber each other's rollback point.
type Client struct {
	endpoint string
	apiKey   string
	http     Doer
	onChange func(*Cache)

	mu    sync.Mutex
	cache *Cache
}

// New creates a client with an empty cache. Call Refresh to populate it.
func New(cfg Config) *Client {
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.ApiKey,
		http:     doer,
		onChange: cfg.OnChange,
		cache:    NewCache(),
	}
}

// State returns a deep copy of the current cache, safe to read concurrently
// with sync cycles.
func (c *Client) State() *Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Clone()
}

// Refresh performs an authoritative pull and replaces the cache wholesale.
// It holds the client lock across the pull and the swap, so a refresh
// racing a sync cycle can never overwrite a newer post-commit cache with
// an older read.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh, err := c.pull(ctx)
	if err != nil {
		return err
	}
	c.cache = fresh
	c.render(fresh)
	return nil
}

func (c *Client) render(cache *Cache) {
	if c.onChange != nil {
		c.onChange(cache)
	}
}

// pull fetches the read endpoint and builds a cache from the response.
func (c *Client) pull(ctx context.Context) (*Cache, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	var body models.ReadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	if body.Status != "success" {
		return nil, &RemoteError{Message: body.Message}
	}

	cache := &Cache{
		Data:          body.Data,
		InventoryList: body.InventoryList,
		Transactions:  body.Transactions,
	}
	if cache.Data == nil {
		cache.Data = make(map[string]models.DeviceLevel)
	}
	return cache, nil
}

// post sends a write request and interprets the acknowledgment.
func (c *Client) post(ctx context.Context, payload *models.WriteRequest) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	var body models.WriteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	if body.Status != "success" {
		return &RemoteError{Message: body.Message}
	}
	return nil
}
