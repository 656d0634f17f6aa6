package domain

// SearchRequest is what a driving adapter collects from the user.
type SearchRequest struct {
	// Query is sent to the API as the text parameter.
	Query string

	// TopN truncates the filtered result. Values <= 0 keep everything.
	TopN int

	// Keywords filter descriptions. Each keyword is applied separately
	// and the results concatenated, so a vacancy matching two keywords
	// appears twice.
	Keywords []string
}
