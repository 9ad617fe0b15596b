// Package server exposes the extraction pipeline over HTTP.
//
// GET /changes scrapes the form,
// runs the pipeline, and returns the records as a JSON array; a total fetch
// failure becomes a JSON error object with a failure status, never a panic.
// /changes/latest serves the stored snapshot without refetching, and
// /changes.ics renders the records as an iCalendar feed. CORS is permissive
// so the timetable viewer can call the API from any origin.
package server
