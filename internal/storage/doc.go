// Package storage provides JSON-based persistence for run snapshots.
//
// Each run writes a dated archive file (form_data_YYYY-MM-DD.json) and wholly
// replaces latest.json, which the next run reads to detect newly announced
// changes. The default storage location is ./data.
package storage
