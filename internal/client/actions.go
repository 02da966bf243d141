package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	perr "salesops/internal/platform/errors"
	"salesops/internal/refdata"
)

// lookupList mirrors the lookups /get response
type lookupList struct {
	Name    string           `json:"name"`
	Options []refdata.Option `json:"options"`
	Seeded  bool             `json:"seeded,omitempty"`
}

// Options fetches one lookup list for dropdown use
func (c *Client) Options(ctx context.Context, name string) ([]refdata.Option, error) {
	var out lookupList
	if err := c.Post(ctx, "/lookups/get", map[string]any{"name": name}, &out); err != nil {
		return nil, err
	}
	return out.Options, nil
}

// LookupFetcher adapts a lookup list to a refdata fetch function so a
// Catalog can cache it
func (c *Client) LookupFetcher(name string) refdata.FetchFunc {
	return func(ctx context.Context) ([]refdata.Option, error) {
		return c.Options(ctx, name)
	}
}

// ReviewResult mirrors the vehicles approve/reject response
type ReviewResult struct {
	Requested int `json:"requested"`
	Changed   int `json:"changed"`
}

// ApproveVehicles approves the pending vehicles with the given ids
func (c *Client) ApproveVehicles(ctx context.Context, ids []string) (ReviewResult, error) {
	var out ReviewResult
	err := c.Post(ctx, "/vehicles/approve", map[string]any{"ids": ids}, &out)
	return out, err
}

// RejectVehicles rejects the pending vehicles with the given ids.
// The server requires a reason
func (c *Client) RejectVehicles(ctx context.Context, ids []string, reason string) (ReviewResult, error) {
	var out ReviewResult
	err := c.Post(ctx, "/vehicles/reject", map[string]any{"ids": ids, "reason": reason}, &out)
	return out, err
}

// ApproveAssets approves the pending assets with the given ids
func (c *Client) ApproveAssets(ctx context.Context, ids []string) (ReviewResult, error) {
	var out ReviewResult
	err := c.Post(ctx, "/assets/approve", map[string]any{"ids": ids}, &out)
	return out, err
}

// RejectAssets rejects the pending assets with the given ids.
// The server requires a reason
func (c *Client) RejectAssets(ctx context.Context, ids []string, reason string) (ReviewResult, error) {
	var out ReviewResult
	err := c.Post(ctx, "/assets/reject", map[string]any{"ids": ids, "reason": reason}, &out)
	return out, err
}

// Export streams a file export into w. Unlike the JSON endpoints the
// export response is a raw attachment, not an envelope
func (c *Client) Export(ctx context.Context, resource, format, query string, filters map[string]any, w io.Writer) error {
	body := map[string]any{"format": format}
	if query != "" {
		body["query"] = query
	}
	if len(filters) > 0 {
		body["filters"] = filters
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "client: encode export body")
	}

	url := c.baseURL + "/api/v1/" + resource + "/export"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "client: build export request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "client: export "+resource)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != "" {
			return apiError(resp.StatusCode, env)
		}
		return perr.Newf(perr.ErrorCodeUnknown, "export failed with http %d", resp.StatusCode)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "client: stream export")
	}
	return nil
}
