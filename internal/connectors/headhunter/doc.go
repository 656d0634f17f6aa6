// Package headhunter implements a listing source for the hh.ru vacancy
// search API.
//
// # Pagination
//
// The Fetcher requests GET <base_url>?text=<keyword>&page=<p>&per_page=<n>
// for p = 0, 1, ... up to Config.MaxPages, appending the "items" of every
// page in API order. Paging stops early when the API reports no further
// pages or returns an empty page.
//
// A non-200 status is not treated as a failure: the fetcher logs a warning
// and returns whatever it accumulated so far. A first-page failure yields an
// empty result. Transport and decode errors are returned together with the
// partial result. There is no retry or backoff.
//
// # HTTP
//
// HTTPClient is a thin net/http wrapper. When an access token is configured
// every request carries an OAuth bearer header. Requests may be paced with a
// token bucket (see domain.APISettings.RequestsPerSecond).
package headhunter
