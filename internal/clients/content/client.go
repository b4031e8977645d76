package content

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

	"go.uber.org/zap"

	internal "github.com/KirkDiggler/rpg-content-admin/internal"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

const maxErrorBody = 4 << 10

type client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

type Config struct {
	BaseURL    string
	Token      string
	HttpClient *http.Client
	Logger     *zap.Logger
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.BaseURL == "" {
		return nil, internal.NewMissingParamError("cfg.BaseURL")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, internal.NewInvalidParamError("cfg.BaseURL must be an absolute URL")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &client{
		baseURL:    base,
		token:      cfg.Token,
		httpClient: httpClient,
		logger:     logger.Named("content"),
	}, nil
}

func (c *client) GetSpeciesBySlug(ctx context.Context, slug string) (*Species, error) {
	if slug == "" {
		return nil, dnderr.InvalidArgument("species slug is required")
	}

	var species Species
	if err := c.do(ctx, http.MethodGet, "/admin/species/slug/"+url.PathEscape(slug), nil, nil, &species); err != nil {
		return nil, dnderr.Wrapf(err, "failed to get species %s", slug).WithMeta("slug", slug)
	}
	return &species, nil
}

func (c *client) ListTraitsByIDs(ctx context.Context, ids []string) ([]trait.Trait, error) {
	if len(ids) == 0 {
		return []trait.Trait{}, nil
	}

	query := url.Values{"ids": []string{strings.Join(ids, ",")}}
	traits := []trait.Trait{}
	if err := c.do(ctx, http.MethodGet, "/admin/trait/by-ids", query, nil, &traits); err != nil {
		return nil, dnderr.Wrap(err, "failed to list traits").WithMeta("ids", ids)
	}
	return traits, nil
}

func (c *client) CreateTrait(ctx context.Context, t *trait.Trait) (*trait.Trait, error) {
	if t == nil {
		return nil, dnderr.InvalidArgument("trait cannot be nil")
	}

	var created trait.Trait
	if err := c.do(ctx, http.MethodPost, "/admin/trait", nil, t, &created); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create trait %s", t.Name)
	}
	return &created, nil
}

func (c *client) UpdateTrait(ctx context.Context, t *trait.Trait) (*trait.Trait, error) {
	if t == nil {
		return nil, dnderr.InvalidArgument("trait cannot be nil")
	}
	if t.ID == "" {
		return nil, dnderr.InvalidArgument("trait ID is required")
	}

	var updated trait.Trait
	if err := c.do(ctx, http.MethodPut, "/admin/trait/"+url.PathEscape(t.ID), nil, t, &updated); err != nil {
		return nil, dnderr.Wrapf(err, "failed to update trait %s", t.ID).WithMeta("trait_id", t.ID)
	}
	return &updated, nil
}

func (c *client) DeleteTrait(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("trait ID is required")
	}

	if err := c.do(ctx, http.MethodDelete, "/admin/trait/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return dnderr.Wrapf(err, "failed to delete trait %s", id).WithMeta("trait_id", id)
	}
	return nil
}

func (c *client) ListModifierTypes(ctx context.Context) ([]taxonomy.ModifierType, error) {
	types := []taxonomy.ModifierType{}
	if err := c.do(ctx, http.MethodGet, "/admin/trait-modifier", nil, nil, &types); err != nil {
		return nil, dnderr.Wrap(err, "failed to list modifier types")
	}
	return types, nil
}

func (c *client) ListIncumbencies(ctx context.Context) ([]*incumbency.Incumbency, error) {
	records := []*incumbency.Incumbency{}
	if err := c.do(ctx, http.MethodGet, "/api/incumbency", nil, nil, &records); err != nil {
		return nil, dnderr.Wrap(err, "failed to list incumbencies")
	}
	return records, nil
}

func (c *client) GetIncumbency(ctx context.Context, id string) (*incumbency.Incumbency, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("incumbency ID is required")
	}

	var record incumbency.Incumbency
	if err := c.do(ctx, http.MethodGet, "/api/incumbency/"+url.PathEscape(id), nil, nil, &record); err != nil {
		return nil, dnderr.Wrapf(err, "failed to get incumbency %s", id).WithMeta("incumbency_id", id)
	}
	return &record, nil
}

func (c *client) ListIncumbencyVersions(ctx context.Context, key string) ([]*incumbency.Incumbency, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("incumbency key is required")
	}

	records := []*incumbency.Incumbency{}
	if err := c.do(ctx, http.MethodGet, "/api/incumbency/key/"+url.PathEscape(key), nil, nil, &records); err != nil {
		return nil, dnderr.Wrapf(err, "failed to list versions of %s", key).WithMeta("key", key)
	}
	return records, nil
}

func (c *client) CreateIncumbency(ctx context.Context, inc *incumbency.Incumbency) (*incumbency.Incumbency, error) {
	if inc == nil {
		return nil, dnderr.InvalidArgument("incumbency cannot be nil")
	}

	var created incumbency.Incumbency
	if err := c.do(ctx, http.MethodPost, "/api/incumbency", nil, inc, &created); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create %s version %d", inc.Key, inc.Version).
			WithMeta("key", inc.Key).
			WithMeta("version", inc.Version)
	}
	return &created, nil
}

func (c *client) UpdateIncumbency(ctx context.Context, id string, inc *incumbency.Incumbency) (*incumbency.Incumbency, error) {
	if inc == nil {
		return nil, dnderr.InvalidArgument("incumbency cannot be nil")
	}
	if id == "" {
		return nil, dnderr.InvalidArgument("incumbency ID is required")
	}

	var updated incumbency.Incumbency
	if err := c.do(ctx, http.MethodPatch, "/api/incumbency/"+url.PathEscape(id), nil, inc, &updated); err != nil {
		return nil, dnderr.Wrapf(err, "failed to update incumbency %s", id).
			WithMeta("incumbency_id", id).
			WithMeta("version", inc.Version)
	}
	return &updated, nil
}

func (c *client) DeleteIncumbency(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("incumbency ID is required")
	}

	if err := c.do(ctx, http.MethodDelete, "/api/incumbency/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return dnderr.Wrapf(err, "failed to delete incumbency %s", id).WithMeta("incumbency_id", id)
	}
	return nil
}

// do sends one request and decodes a bare or {"data": ...} wrapped body into out
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// path segments arrive already escaped
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return dnderr.RemoteFailure(err, fmt.Sprintf("%s %s", method, path))
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return dnderr.RemoteFailure(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := decode(data, out); err != nil {
		return dnderr.RemoteFailure(err, "failed to decode response")
	}
	return nil
}

func decode(data []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func statusError(method, path string, status int, body []byte) error {
	msg := serverMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	var e *dnderr.Error
	switch status {
	case http.StatusUnauthorized:
		e = dnderr.Unauthenticatedf("%s %s: %s", method, path, msg)
	case http.StatusForbidden:
		e = dnderr.PermissionDeniedf("%s %s: %s", method, path, msg)
	case http.StatusNotFound:
		e = dnderr.NotFoundf("%s %s: %s", method, path, msg)
	default:
		e = dnderr.RemoteFailuref("%s %s: %s", method, path, msg)
	}

	return e.WithMeta("status", status).WithMeta("server_message", msg)
}

func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return text
}
