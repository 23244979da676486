// Package catalog fetches typed records from the PokeAPI catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

// ErrEmptyIdentifier is returned for a blank name or id.
var ErrEmptyIdentifier = errors.New("identifier is empty")

// Getter is the slice of *client.Client the fetcher needs.
type Getter interface {
	Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error)
	GetURL(ctx context.Context, rawURL string) ([]byte, error)
}

// Fetcher retrieves and decodes catalog documents.
type Fetcher struct {
	getter Getter
}

// NewFetcher creates a fetcher on top of a catalog client.
func NewFetcher(getter Getter) *Fetcher {
	return &Fetcher{getter: getter}
}

// FetchByIdentifier fetches one record by name or numeric id. Lookups are
// case-insensitive.
func (f *Fetcher) FetchByIdentifier(ctx context.Context, nameOrID string) (*pokemon.Record, error) {
	id := strings.ToLower(strings.TrimSpace(nameOrID))
	if id == "" {
		return nil, ErrEmptyIdentifier
	}

	body, err := f.getter.Get(ctx, "/pokemon/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", id, err)
	}

	rec, err := pokemon.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", id, err)
	}
	return rec, nil
}

// FetchByURL fetches one record from a listing reference URL.
func (f *Fetcher) FetchByURL(ctx context.Context, rawURL string) (*pokemon.Record, error) {
	body, err := f.getter.GetURL(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	rec, err := pokemon.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return rec, nil
}

// FetchListing fetches the first limit references of the catalog.
func (f *Fetcher) FetchListing(ctx context.Context, limit int) (*pokemon.Listing, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("listing limit must be > 0 (got %d)", limit)
	}

	body, err := f.getter.Get(ctx, "/pokemon", url.Values{"limit": []string{strconv.Itoa(limit)}})
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	listing, err := pokemon.DecodeListing(body)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	return listing, nil
}
