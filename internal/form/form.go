package form

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultFormURL is the public form page announcing schedule changes
	DefaultFormURL = "https://docs.google.com/forms/d/e/1FAIpQLScUd3YWWX57ZIZP1de41DH8YQKlFCJZjQAW3Vj0EpijXq8WMw/viewform"
	UserAgent      = "classroom/1.0 (github.com/shoji1021/classroom)"
	Timeout        = 30 * time.Second

	// UnknownTitle is used when the page carries no recognizable form title
	UnknownTitle = "フォームタイトル不明"
)

// Fetcher handles fetching and parsing the announcement form page
type Fetcher struct {
	client *http.Client
	url    string
}

// Document holds the form title and the raw announcement strings, in page order
type Document struct {
	Title         string
	Announcements []string
}

// New creates a Fetcher for the given form URL; an empty url selects DefaultFormURL
func New(url string) *Fetcher {
	if url == "" {
		url = DefaultFormURL
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the form URL this fetcher targets
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads the form page and extracts announcement strings.
// Any transport error or non-200 status is a hard failure for the whole run.
func (f *Fetcher) Fetch() (*Document, error) {
	req, err := http.NewRequest("GET", f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseDocument(resp.Body)
}

// parseDocument extracts the form title and question headings from HTML
func parseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find(`div[role="heading"]`).First().Text())
	if title == "" {
		title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
		title = strings.TrimSpace(title)
	}
	if title == "" {
		title = UnknownTitle
	}

	announcements := make([]string, 0)
	doc.Find(`div[role="listitem"]`).Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find(`div[role="heading"]`).Text())
		if text != "" {
			announcements = append(announcements, text)
		}
	})

	return &Document{
		Title:         title,
		Announcements: announcements,
	}, nil
}
