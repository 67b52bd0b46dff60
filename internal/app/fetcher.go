package app

import (
	"context"
	"fmt"
	"os"

	"github.com/somiandras/gtm-docs/internal/config"
	"github.com/somiandras/gtm-docs/internal/gtm"
	"github.com/somiandras/gtm-docs/internal/model"
)

// Fetcher retrieves the normalized elements to document. The live API
// implementation is the default; tests substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, cfg *config.Config) ([]model.Element, error)
}

// apiFetcher fetches from the Tag Manager API using the service account
// credentials named in the configuration.
type apiFetcher struct{}

func (apiFetcher) Fetch(ctx context.Context, cfg *config.Config) ([]model.Element, error) {
	creds, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	client, err := gtm.New(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.FetchElements(ctx, gtm.Workspace{
		AccountID:   cfg.Container.AccountID,
		ContainerID: cfg.Container.ContainerID,
		WorkspaceID: cfg.Container.WorkspaceID,
	})
}
