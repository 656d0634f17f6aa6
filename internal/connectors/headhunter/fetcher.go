package headhunter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Alina998/hh-project/internal/core/domain"
	"github.com/Alina998/hh-project/internal/core/ports/driven"
	"github.com/Alina998/hh-project/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.ListingSource = (*Fetcher)(nil)

// Fetcher pages through the vacancy search API.
type Fetcher struct {
	client driven.HTTPClient
	cfg    Config
}

// New creates a fetcher. Zero-valued config fields take their defaults.
func New(client driven.HTTPClient, cfg Config) *Fetcher {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = def.MaxPages
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = def.PerPage
	}
	return &Fetcher{client: client, cfg: cfg}
}

// Config returns the effective configuration.
func (f *Fetcher) Config() Config {
	return f.cfg
}

// Fetch returns every listing for keyword across up to MaxPages pages.
func (f *Fetcher) Fetch(ctx context.Context, keyword string) ([]domain.RawListing, error) {
	listings := make([]domain.RawListing, 0)
	headers := map[string]string{HeaderUserAgent: f.cfg.UserAgent}

	for page := 0; page < f.cfg.MaxPages; page++ {
		select {
		case <-ctx.Done():
			return listings, ctx.Err()
		default:
		}

		params := url.Values{}
		params.Set(ParamText, keyword)
		params.Set(ParamPage, strconv.Itoa(page))
		params.Set(ParamPerPage, strconv.Itoa(f.cfg.PerPage))

		status, body, err := f.client.Get(ctx, f.cfg.BaseURL, headers, params)
		if err != nil {
			return listings, fmt.Errorf("page %d: %w", page, err)
		}
		if status != http.StatusOK {
			logger.Warn("Listing request for page %d returned status %d, keeping %d listings", page, status, len(listings))
			return listings, nil
		}

		var resp domain.ListingPage
		if err := json.Unmarshal(body, &resp); err != nil {
			return listings, fmt.Errorf("page %d: decode: %w", page, err)
		}
		listings = append(listings, resp.Items...)
		logger.Debug("Page %d: %d listings", page, len(resp.Items))

		if len(resp.Items) == 0 || (resp.Pages > 0 && page+1 >= resp.Pages) {
			break
		}
	}

	return listings, nil
}
