package domain

// RawListing is a single vacancy as returned by the HeadHunter search API.
// Only the fields the normaliser reads are decoded. Pointers distinguish an
// absent field from its zero value.
type RawListing struct {
	// Name is the vacancy title.
	Name *string `json:"name"`

	// Area holds the city the vacancy is located in.
	Area *RawArea `json:"area"`

	// Salary is nil when the employer did not publish one.
	Salary *RawSalary `json:"salary"`

	// AlternateURL is the human-facing page on hh.ru.
	AlternateURL *string `json:"alternate_url"`

	// Snippet carries the short requirement text.
	Snippet *RawSnippet `json:"snippet"`
}

// RawArea is the region block of a listing.
type RawArea struct {
	Name *string `json:"name"`
}

// RawSalary is the salary fork of a listing. Either bound may be null.
type RawSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// RawSnippet is the highlighted excerpt of a listing.
type RawSnippet struct {
	// Requirement may be null; it becomes Vacancy.Description.
	Requirement *string `json:"requirement"`
}

// ListingPage is one page of the search response.
type ListingPage struct {
	Items []RawListing `json:"items"`

	// Pages is the total page count reported by the API, 0 if absent.
	Pages int `json:"pages"`
}
