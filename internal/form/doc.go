// Package form provides HTTP fetching and HTML parsing for the public
// announcement form.
//
// The form package fetches the public Google Form page that announces ad-hoc
// schedule changes and extracts each question title as one raw announcement
// string. HTML structure knowledge lives entirely here; the parser package
// only ever sees plain strings.
package form
