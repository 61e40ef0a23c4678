package collections_test

import (
	"strings"
	"testing"

	"github.com/alkime/fastgenius/pkg/collections"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		ints := []int{1, 2, 3, 4}
		squared := collections.Apply(ints, func(i int) int {
			return i * i
		})

		require.Equal(t, []int{1, 4, 9, 16}, squared)
	})

	t.Run("structs", func(t *testing.T) {
		type Template struct {
			ID   string
			Name string
		}

		tmpls := []Template{
			{ID: "eli5", Name: "Explain Like I'm 5"},
			{ID: "quickwriter", Name: "QuickWriter"},
		}

		ids := collections.Apply(tmpls, func(t Template) string {
			return t.ID
		})
		require.Equal(t, []string{"eli5", "quickwriter"}, ids)
	})

	t.Run("empty", func(t *testing.T) {
		out := collections.Apply([]string{}, strings.ToUpper)
		require.Empty(t, out)
	})
}

func TestFilter(t *testing.T) {
	ids := []string{"custom_prompt", "eli5", "homework_helper", "instant_replies"}

	got := collections.Filter(ids, func(id string) bool {
		return strings.Contains(id, "_")
	})
	require.Equal(t, []string{"custom_prompt", "homework_helper", "instant_replies"}, got)

	none := collections.Filter(ids, func(string) bool { return false })
	require.Empty(t, none)
}
