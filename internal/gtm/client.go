// Package gtm fetches tags, triggers and variables from the Tag Manager
// v2 API and normalizes the raw payloads into the model the formatting
// engine consumes.
package gtm

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"resty.dev/v3"

	"github.com/somiandras/gtm-docs/internal/ctxlog"
	"github.com/somiandras/gtm-docs/internal/model"
)

const (
	defaultBaseURL = "https://www.googleapis.com/tagmanager/v2"
	readonlyScope  = "https://www.googleapis.com/auth/tagmanager.readonly"
)

// Workspace identifies one Tag Manager workspace.
type Workspace struct {
	AccountID   string
	ContainerID string
	WorkspaceID string
}

// Client is an authenticated Tag Manager API client.
type Client struct {
	http *resty.Client
}

// New builds a client authenticated with the given service account
// credentials JSON, scoped read-only.
func New(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, readonlyScope)
	if err != nil {
		return nil, fmt.Errorf("loading service account credentials: %w", err)
	}
	hc := oauth2.NewClient(ctx, creds.TokenSource)
	return &Client{http: resty.NewWithClient(hc).SetBaseURL(defaultBaseURL)}, nil
}

// NewWithHTTPClient wraps an existing HTTP client against baseURL. Used
// by tests to point the client at a local server.
func NewWithHTTPClient(hc *http.Client, baseURL string) *Client {
	return &Client{http: resty.NewWithClient(hc).SetBaseURL(baseURL)}
}

// Close releases the underlying transport resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchElements downloads the workspace's tags, triggers and variables
// and returns them normalized for the formatting engine.
func (c *Client) FetchElements(ctx context.Context, ws Workspace) ([]model.Element, error) {
	raw, err := c.fetch(ctx, ws)
	if err != nil {
		return nil, err
	}
	return normalize(ctx, raw), nil
}

func (c *Client) fetch(ctx context.Context, ws Workspace) (container, error) {
	logger := ctxlog.FromContext(ctx)
	base := fmt.Sprintf("/accounts/%s/containers/%s/workspaces/%s",
		ws.AccountID, ws.ContainerID, ws.WorkspaceID)

	var out container
	for _, kind := range []struct {
		path   string
		target *[]rawElement
	}{
		{"tags", &out.Tags},
		{"triggers", &out.Triggers},
		{"variables", &out.Variables},
	} {
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&listResponse{}).
			Get(base + "/" + kind.path)
		if err != nil {
			return container{}, fmt.Errorf("fetching %s: %w", kind.path, err)
		}
		if resp.IsError() {
			return container{}, fmt.Errorf("fetching %s: unexpected status %s", kind.path, resp.Status())
		}

		list := resp.Result().(*listResponse)
		switch kind.path {
		case "tags":
			*kind.target = list.Tag
		case "triggers":
			*kind.target = list.Trigger
		case "variables":
			*kind.target = list.Variable
		}
		logger.Debug("fetched workspace elements", "kind", kind.path, "count", len(*kind.target))
	}
	return out, nil
}
