// Package librarycache resolves human-entered titles to documents in a
// presentation library.
//
// It scans library directories for documents, fuzzily matches titles
// against them, and remembers past picks in a SQLite store so an
// ambiguous title resolves the same way next week.
package librarycache
