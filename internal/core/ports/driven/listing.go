package driven

import (
	"context"

	"github.com/Alina998/hh-project/internal/core/domain"
)

// ListingSource fetches raw listings matching a keyword from a job board.
type ListingSource interface {
	// Fetch pages through the remote API and returns every listing it
	// accumulated. A non-success status ends pagination without an error;
	// partial results are returned alongside any transport error.
	Fetch(ctx context.Context, keyword string) ([]domain.RawListing, error)
}
