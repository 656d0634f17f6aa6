package driven

import (
	"context"
	"net/url"
)

// HTTPClient performs a single GET request.
// A non-2xx status is not an error: callers inspect status themselves.
// err is reserved for transport failures where no response was received.
type HTTPClient interface {
	Get(ctx context.Context, rawURL string, headers map[string]string, params url.Values) (status int, body []byte, err error)
}
