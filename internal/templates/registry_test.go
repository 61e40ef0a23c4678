package templates_test

import (
	"encoding/json"
	"testing"

	"github.com/alkime/fastgenius/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_IDs(t *testing.T) {
	ids := templates.Default().IDs()

	assert.Equal(t, []string{
		"custom_prompt",
		"eli5",
		"homework_helper",
		"instant_replies",
		"quickwriter",
		"resume_bio",
		"startup_pitch",
	}, ids)
	assert.True(t, templates.Default().Has(templates.DefaultID))
}

func TestRegistry_Get(t *testing.T) {
	reg := templates.Default()

	tmpl, err := reg.Get("eli5")
	require.NoError(t, err)
	assert.Equal(t, "Explain Like I'm 5", tmpl.Name)
	assert.Contains(t, tmpl.Prompt, "{topic}")

	_, err = reg.Get("nope")
	assert.ErrorIs(t, err, templates.ErrNotFound)
	assert.False(t, reg.Has("nope"))
}

func TestRegistry_ListHidesPrompt(t *testing.T) {
	reg := templates.Default()
	listing := reg.List()

	require.Len(t, listing, len(reg.IDs()))
	for _, id := range reg.IDs() {
		tmpl, err := reg.Get(id)
		require.NoError(t, err)

		info, ok := listing[id]
		require.True(t, ok, "listing missing %s", id)
		assert.Equal(t, tmpl.Name, info.Name)
		assert.Equal(t, tmpl.Description, info.Description)
	}

	raw, err := json.Marshal(listing)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "{topic}")
	assert.NotContains(t, string(raw), "Return only JSON")
}

func TestTemplate_Render(t *testing.T) {
	tmpl := templates.Template{
		ID:     "t",
		Prompt: "Write a {content_type} about {topic}. Tone: {tone}. Length: {length}. Language: {language}. {\"title\": \"...\"}",
	}

	got := tmpl.Render(templates.Params{
		ContentType: "poem",
		Topic:       "cats {tone}",
		Tone:        "playful",
		Length:      "short",
		Language:    "english",
	})

	assert.Equal(t,
		"Write a poem about cats {tone}. Tone: playful. Length: short. Language: english. {\"title\": \"...\"}",
		got,
	)
}

func TestNewRegistry_DuplicateReplaces(t *testing.T) {
	reg := templates.NewRegistry(
		templates.Template{ID: "a", Name: "first"},
		templates.Template{ID: "a", Name: "second"},
	)

	tmpl, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "second", tmpl.Name)
	assert.Len(t, reg.IDs(), 1)
}

func TestParams_WithDefaults(t *testing.T) {
	got := templates.Params{Topic: "cats", Tone: "witty"}.WithDefaults()

	assert.Equal(t, templates.Params{
		ContentType: "article",
		Topic:       "cats",
		Tone:        "witty",
		Length:      "medium",
		Language:    "english",
	}, got)
}
