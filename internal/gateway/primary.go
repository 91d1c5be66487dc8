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

// PrimaryStore is the interface the dispatcher talks to for the tree-and-link
// entities. Implemented by PrimaryClient; faked in tests.
type PrimaryStore interface {
	Create(ctx context.Context, kind domain.Kind, e domain.Entity) error
	Update(ctx context.Context, kind domain.Kind, id string, patch domain.Patch) error
	Delete(ctx context.Context, kind domain.Kind, id string) error
	FetchSnapshot(ctx context.Context) (map[domain.Kind][]domain.Entity, error)
}

// PrimaryClient talks to the primary store over JSON/HTTP. Field names are
// translated to the store's snake-cased naming on the way out and back.
type PrimaryClient struct {
	cfg  Config
	http *http.Client
	id   identity.Provider
}

func NewPrimaryClient(cfg Config, id identity.Provider) *PrimaryClient {
	return &PrimaryClient{
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

func (c *PrimaryClient) Create(ctx context.Context, kind domain.Kind, e domain.Entity) error {
	kind = domain.ResolveKind(kind)
	record, err := entityToWire(e)
	if err != nil {
		return &CallError{Gateway: GatewayPrimary, Op: "create", Kind: string(kind), EntityID: e.EntityID(), Err: err}
	}
	url := fmt.Sprintf("%s/api/%s", c.cfg.Endpoint, kind)
	if err := c.do(ctx, http.MethodPost, url, record, nil); err != nil {
		return &CallError{Gateway: GatewayPrimary, Op: "create", Kind: string(kind), EntityID: e.EntityID(), Err: err}
	}
	return nil
}

func (c *PrimaryClient) Update(ctx context.Context, kind domain.Kind, id string, patch domain.Patch) error {
	kind = domain.ResolveKind(kind)
	url := fmt.Sprintf("%s/api/%s/%s", c.cfg.Endpoint, kind, id)
	if err := c.do(ctx, http.MethodPatch, url, patchToWire(patch), nil); err != nil {
		return &CallError{Gateway: GatewayPrimary, Op: "update", Kind: string(kind), EntityID: id, Err: err}
	}
	return nil
}

func (c *PrimaryClient) Delete(ctx context.Context, kind domain.Kind, id string) error {
	kind = domain.ResolveKind(kind)
	url := fmt.Sprintf("%s/api/%s/%s", c.cfg.Endpoint, kind, id)
	if err := c.do(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return &CallError{Gateway: GatewayPrimary, Op: "delete", Kind: string(kind), EntityID: id, Err: err}
	}
	return nil
}

// FetchSnapshot hydrates the mirror: one GET returning every collection keyed
// by kind, records in the store's snake-cased naming.
func (c *PrimaryClient) FetchSnapshot(ctx context.Context) (map[domain.Kind][]domain.Entity, error) {
	url := c.cfg.Endpoint + "/api/snapshot"
	var raw map[string][]map[string]any
	if err := c.do(ctx, http.MethodGet, url, nil, &raw); err != nil {
		return nil, &CallError{Gateway: GatewayPrimary, Op: "snapshot", Err: err}
	}
	out := make(map[domain.Kind][]domain.Entity, len(raw))
	for name, records := range raw {
		kind := domain.Kind(name)
		if !domain.ValidKind(kind) || kind == domain.KindSignal {
			continue
		}
		coll := make([]domain.Entity, 0, len(records))
		for _, record := range records {
			e, err := wireToEntity(kind, record)
			if err != nil {
				return nil, &CallError{Gateway: GatewayPrimary, Op: "snapshot", Kind: name, Err: err}
			}
			coll = append(coll, e)
		}
		out[kind] = coll
	}
	return out, nil
}

func (c *PrimaryClient) do(ctx context.Context, method, url string, body any, out any) error {
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
	if tok := c.id.Identity().Token; tok != nil {
		req.Header.Set("Authorization", "Bearer "+*tok)
	}

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
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
