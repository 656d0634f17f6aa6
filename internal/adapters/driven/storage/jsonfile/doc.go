// Package jsonfile provides the default vacancy store: a single JSON array
// of vacancies written with four-space indentation. Non-ASCII text (the
// Cyrillic names and cities hh.ru returns) is written literally.
//
// # Concurrency
//
// Each operation reads the whole file, modifies it in memory and rewrites
// it. There is no file locking. Two hhvac processes writing to the same
// file at once can lose each other's changes; the store is meant for a
// single user running one command at a time.
package jsonfile
