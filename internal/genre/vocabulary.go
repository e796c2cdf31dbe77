// Package genre holds the keyword table used to detect genre sections from
// document headings.
package genre

import (
	"regexp"
	"strings"
)

// Entry maps a lowercase heading keyword to its display label
type Entry struct {
	Keyword string
	Label   string
}

// Vocabulary is an ordered keyword table. Order is the tie-break when more than
// one keyword occurs in the same heading.
type Vocabulary []Entry

// Default is the built-in vocabulary. Do not reorder: "science fiction" and
// "sci-fi" share a label, and earlier keywords win over later ones.
var Default = Vocabulary{
	{Keyword: "action", Label: "Action"},
	{Keyword: "animation", Label: "Animation"},
	{Keyword: "christmas", Label: "Christmas"},
	{Keyword: "comedy", Label: "Comedy"},
	{Keyword: "disaster", Label: "Disaster"},
	{Keyword: "documentary", Label: "Documentary"},
	{Keyword: "fantasy", Label: "Fantasy"},
	{Keyword: "horror", Label: "Horror"},
	{Keyword: "lgbt", Label: "LGBT"},
	{Keyword: "musical", Label: "Musical"},
	{Keyword: "romance", Label: "Romance"},
	{Keyword: "science fiction", Label: "Science Fiction"},
	{Keyword: "sci-fi", Label: "Science Fiction"},
	{Keyword: "silent", Label: "Silent"},
	{Keyword: "sports", Label: "Sports"},
	{Keyword: "superhero", Label: "Superhero"},
	{Keyword: "war", Label: "War"},
	{Keyword: "western", Label: "Western"},
}

var (
	citationPattern = regexp.MustCompile(`\[.*?\]`)
	editPattern     = regexp.MustCompile(`\s*\(edit\)\s*`)
)

// NormalizeHeading lowercases a heading and strips citation markers and the
// "(edit)" suffix.
func NormalizeHeading(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimSpace(citationPattern.ReplaceAllString(text, ""))
	text = strings.TrimSpace(editPattern.ReplaceAllString(text, ""))
	return text
}

// Match returns the label of the first keyword contained in the normalized
// heading.
func (v Vocabulary) Match(heading string) (string, bool) {
	normalized := NormalizeHeading(heading)
	for _, entry := range v {
		if strings.Contains(normalized, entry.Keyword) {
			return entry.Label, true
		}
	}
	return "", false
}
