package domain

// StoreState distinguishes the three shapes a store read can take.
type StoreState int

const (
	// StoreAbsent means the backing file or database does not exist.
	StoreAbsent StoreState = iota

	// StoreEmpty means the store exists and holds no vacancies.
	StoreEmpty

	// StorePopulated means the store holds at least one vacancy.
	StorePopulated
)

// String returns a human-readable state name.
func (s StoreState) String() string {
	switch s {
	case StoreAbsent:
		return "absent"
	case StoreEmpty:
		return "empty"
	case StorePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// StoreResult is the outcome of Load, Find and DeleteMatching.
type StoreResult struct {
	State     StoreState
	Vacancies []Vacancy
}

// NewStoreResult classifies vacancies as empty or populated.
func NewStoreResult(vacancies []Vacancy) StoreResult {
	if vacancies == nil {
		vacancies = []Vacancy{}
	}
	if len(vacancies) == 0 {
		return StoreResult{State: StoreEmpty, Vacancies: vacancies}
	}
	return StoreResult{State: StorePopulated, Vacancies: vacancies}
}

// AbsentResult is returned when the store does not exist.
func AbsentResult() StoreResult {
	return StoreResult{State: StoreAbsent}
}

// Absent reports whether the store was missing.
func (r StoreResult) Absent() bool {
	return r.State == StoreAbsent
}

// SaveStatus describes what MergeWrite did.
type SaveStatus int

const (
	// SaveNothingToSave means the input was empty and no I/O happened.
	SaveNothingToSave SaveStatus = iota

	// SaveCreated means the store did not exist and was written from the input.
	SaveCreated

	// SaveMerged means new vacancies were appended to an existing store.
	SaveMerged
)

// String returns a human-readable status name.
func (s SaveStatus) String() string {
	switch s {
	case SaveNothingToSave:
		return "nothing to save"
	case SaveCreated:
		return "created"
	case SaveMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// SaveResult is the outcome of MergeWrite.
type SaveResult struct {
	Status SaveStatus

	// Added is how many vacancies were newly written.
	Added int

	// Total is the size of the store after the write.
	Total int

	// Path is where the store lives.
	Path string
}
