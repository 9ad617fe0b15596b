// Package parser extracts structured schedule-change records from raw
// announcement text.
//
// Announcements are free-form Japanese strings like "2月18日 1F 3h 自宅学習"
// with no fixed grammar. The parser normalizes full-width characters, extracts
// dates, grade/track markers, and period markers with regular expressions,
// attributes each portion of the text to an active class context, and expands
// the result into one record per class and period. Extraction is best-effort
// pattern matching over a constrained vocabulary, not natural-language
// understanding; announcements missing a date are dropped, and ambiguous text
// degrades to "all periods" rather than being hidden.
package parser
