package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	doc, err := Build("My Report", "Hello")
	require.NoError(t, err)

	assert.Equal(t, "my_report.txt", doc.Filename)
	assert.Equal(t, "My Report\n=========\n\nHello", string(doc.Body))
}

func TestBuild_EmptyTitle(t *testing.T) {
	doc, err := Build("", "Body")
	require.NoError(t, err)

	assert.Equal(t, ".txt", doc.Filename)
	assert.Equal(t, "\n\n\nBody", string(doc.Body))
}

func TestBuild_DefaultTitle(t *testing.T) {
	doc, err := Build(DefaultTitle, "Body")
	require.NoError(t, err)

	assert.Equal(t, "generated_content.txt", doc.Filename)
	assert.Equal(t, "Generated Content\n=================\n\nBody", string(doc.Body))
}

func TestBuild_EmptyContent(t *testing.T) {
	_, err := Build("Title", "")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestBuild_UnderlineCountsRunes(t *testing.T) {
	doc, err := Build("Café", "x")
	require.NoError(t, err)

	assert.Equal(t, "Café\n====\n\nx", string(doc.Body))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "My Report",
			expected: "my_report.txt",
		},
		{
			name:     "multiple spaces kept as underscores",
			title:    "Two  Spaces",
			expected: "two__spaces.txt",
		},
		{
			name:     "punctuation kept",
			title:    "Q3: Results!",
			expected: "q3:_results!.txt",
		},
		{
			name:     "path separators replaced",
			title:    "../Etc/Passwd",
			expected: ".._etc_passwd.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.title)
			if got != tt.expected {
				t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}
