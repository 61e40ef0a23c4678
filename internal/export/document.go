// Package export renders generated content as a downloadable plain-text document.
package export

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultTitle is used by callers when an export request carries no title.
	DefaultTitle = "Generated Content"

	// MediaType is the Content-Type of exported documents.
	MediaType = "text/plain; charset=utf-8"

	extension = ".txt"
)

// ErrEmptyContent is returned when there is nothing to export.
var ErrEmptyContent = errors.New("no content to export")

// Document is a rendered export ready to be sent as an attachment.
type Document struct {
	Filename string
	Body     []byte
}

// Build renders title and content into a plain-text document.
// Layout: title, a row of '=' as wide as the title, a blank line, then content.
// The title is used as given; an empty one yields an empty underline and ".txt".
func Build(title, content string) (Document, error) {
	if content == "" {
		return Document{}, ErrEmptyContent
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)))
	sb.WriteString("\n\n")
	sb.WriteString(content)

	return Document{
		Filename: Filename(title),
		Body:     []byte(sb.String()),
	}, nil
}

// Filename converts a title to the attachment name.
// Example: "My Report" -> "my_report.txt"
func Filename(title string) string {
	// Replace spaces with underscores, then lowercase
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "_"))

	// Path separators would let a client pick the save directory
	slug = strings.NewReplacer("/", "_", "\\", "_").Replace(slug)

	return slug + extension
}
