package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/identity"
)

// SignalService is the interface onto the external capture tool's backend.
// Every call requires a bearer token; a missing credential fails before any
// network I/O with ErrNoCredential.
type SignalService interface {
	List(ctx context.Context) ([]*domain.Signal, error)
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.Signal, error)
	Delete(ctx context.Context, id string) error
}

// SignalClient implements SignalService over JSON/HTTP. The signal service
// keeps the core's camel-cased naming; only the primary store speaks snake
// case.
type SignalClient struct {
	cfg  Config
	http *http.Client
	id   identity.Provider
}

func NewSignalClient(cfg Config, id identity.Provider) *SignalClient {
	return &SignalClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		id: id,
	}
}

// signalListResponse is the JSON body returned by GET /signals.
type signalListResponse struct {
	Signals []*domain.Signal `json:"signals"`
}

func (c *SignalClient) List(ctx context.Context) ([]*domain.Signal, error) {
	tok, err := c.token()
	if err != nil {
		return nil, &CallError{Gateway: GatewaySignals, Op: "list", Kind: string(domain.KindSignal), Err: err}
	}
	var resp signalListResponse
	if err := c.do(ctx, http.MethodGet, c.cfg.Endpoint+"/signals", tok, nil, &resp); err != nil {
		return nil, &CallError{Gateway: GatewaySignals, Op: "list", Kind: string(domain.KindSignal), Err: err}
	}
	return resp.Signals, nil
}

func (c *SignalClient) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Signal, error) {
	tok, err := c.token()
	if err != nil {
		return nil, &CallError{Gateway: GatewaySignals, Op: "update", Kind: string(domain.KindSignal), EntityID: id, Err: err}
	}
	var updated domain.Signal
	url := fmt.Sprintf("%s/signals/%s", c.cfg.Endpoint, id)
	if err := c.do(ctx, http.MethodPatch, url, tok, patch, &updated); err != nil {
		return nil, &CallError{Gateway: GatewaySignals, Op: "update", Kind: string(domain.KindSignal), EntityID: id, Err: err}
	}
	return &updated, nil
}

func (c *SignalClient) Delete(ctx context.Context, id string) error {
	tok, err := c.token()
	if err != nil {
		return &CallError{Gateway: GatewaySignals, Op: "delete", Kind: string(domain.KindSignal), EntityID: id, Err: err}
	}
	url := fmt.Sprintf("%s/signals/%s", c.cfg.Endpoint, id)
	if err := c.do(ctx, http.MethodDelete, url, tok, nil, nil); err != nil {
		return &CallError{Gateway: GatewaySignals, Op: "delete", Kind: string(domain.KindSignal), EntityID: id, Err: err}
	}
	return nil
}

// token returns the current bearer credential or ErrNoCredential.
func (c *SignalClient) token() (string, error) {
	tok := c.id.Identity().Token
	if tok == nil {
		return "", ErrNoCredential
	}
	return *tok, nil
}

func (c *SignalClient) do(ctx context.Context, method, url, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrRemoteStatus, resp.StatusCode, string(respBody))
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
