// Package sqlite provides a SQLite-backed implementation of driven.VacancyStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It is selected with
// storage.backend = "sqlite" and follows the same merge, delete and find rules
// as the JSON file store.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Rows keep a seq column so vacancies are returned in insertion order.
//
// # Data Location
//
// By default, the database is stored at ~/.hhvac/data/vacancies.db
//
// # Absent Store
//
// The database file is created by the first MergeWrite. Until then Load, Find
// and DeleteMatching report an absent store and do not create the file.
//
// # Thread Safety
//
// Each operation runs in a single transaction, but merges are still
// read-modify-write: two processes merging at once may both insert the same vacancy.
package sqlite
