package form

import (
	"os"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_form.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	doc, err := parseDocument(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}

	if doc.Title != "授業変更連絡フォーム" {
		t.Errorf("title = %q, expected 授業変更連絡フォーム", doc.Title)
	}

	// Four listitems carry headings; the one without a heading is skipped
	if len(doc.Announcements) != 4 {
		t.Fatalf("expected 4 announcements, got %d", len(doc.Announcements))
	}

	if doc.Announcements[0] != "２月１８日 １Ｆ ３ｈ 自宅学習" {
		t.Errorf("first announcement = %q", doc.Announcements[0])
	}
	if doc.Announcements[2] != "2月25日 全学年 自宅学習" {
		t.Errorf("third announcement = %q", doc.Announcements[2])
	}
}

func TestParseDocumentEmptyPage(t *testing.T) {
	doc, err := parseDocument(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}

	if doc.Title != UnknownTitle {
		t.Errorf("title = %q, expected %q", doc.Title, UnknownTitle)
	}
	if len(doc.Announcements) != 0 {
		t.Errorf("expected 0 announcements, got %d", len(doc.Announcements))
	}
}

func TestNewDefaultsURL(t *testing.T) {
	f := New("")
	if f.URL() != DefaultFormURL {
		t.Errorf("URL() = %q, expected default", f.URL())
	}

	f = New("https://example.com/form")
	if f.URL() != "https://example.com/form" {
		t.Errorf("URL() = %q, expected override", f.URL())
	}
}
