// Package change provides types and functions for managing class-schedule
// change records.
//
// The change package handles record representation, identification, and
// new-change detection through snapshot-based diffing. Each record is assigned
// a deterministic SHA1-based key generated from its date, class, period, and
// subject, enabling reliable tracking across runs.
package change
