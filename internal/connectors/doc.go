// Package connectors holds the job board clients that implement
// driven.ListingSource. Each connector lives in its own subpackage and
// knows one remote API.
package connectors
