package markdown

import "testing"

const sample = `# Project Notes

Some intro text.

## Setup

steps here

### Details

## Usage
`

func TestParseHeadings(t *testing.T) {
	doc := NewParser().Parse([]byte(sample))

	want := []Heading{
		{Level: 1, Text: "Project Notes", Line: 1},
		{Level: 2, Text: "Setup", Line: 5},
		{Level: 3, Text: "Details", Line: 9},
		{Level: 2, Text: "Usage", Line: 11},
	}
	if len(doc.Headings) != len(want) {
		t.Fatalf("got %d headings, want %d: %+v", len(doc.Headings), len(want), doc.Headings)
	}
	for i, w := range want {
		if doc.Headings[i] != w {
			t.Errorf("heading %d = %+v, want %+v", i, doc.Headings[i], w)
		}
	}
	if doc.Title != "Project Notes" {
		t.Errorf("Title = %q, want %q", doc.Title, "Project Notes")
	}
}

func TestParseTitleFallsBackToFirstHeading(t *testing.T) {
	doc := NewParser().Parse([]byte("intro\n\n## Only Subheading\n"))
	if doc.Title != "Only Subheading" {
		t.Errorf("Title = %q, want first heading of any level", doc.Title)
	}
}

func TestParseNoHeadings(t *testing.T) {
	doc := NewParser().Parse([]byte("just a paragraph\n"))
	if doc.Title != "" || len(doc.Headings) != 0 {
		t.Errorf("expected empty document structure, got %+v", doc)
	}
}
