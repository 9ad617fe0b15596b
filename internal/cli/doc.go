// Package cli implements the command-line interface for classroom.
//
// The cli package provides the Cobra-based CLI that fetches the announcement
// form, runs the extraction pipeline, diffs the result against the previous
// snapshot, and reports newly announced changes in text, JSON, or CSV. It
// coordinates the form, parser, storage, and change packages.
package cli
