package model

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGallery_SetNameProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, err := New("Heaven", "Sofia", 1, true)
		require.NoError(t, err)

		v := rapid.String().Draw(t, "name")
		valid := strings.TrimSpace(v) != ""
		for _, r := range v {
			if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
				valid = false
			}
		}

		err = g.SetName(v)
		if valid {
			require.NoError(t, err)
			require.Equal(t, v, g.Name())
		} else {
			require.ErrorIs(t, err, ErrInvalidName)
			require.Equal(t, "Heaven", g.Name())
		}
	})
}

func TestGallery_SetAreaProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, err := New("Heaven", "Sofia", 1, true)
		require.NoError(t, err)

		v := rapid.Float64().Draw(t, "area")
		err = g.SetAreaSqM(v)
		if v > 0 {
			require.NoError(t, err)
			require.Equal(t, v, g.AreaSqM())
		} else {
			require.ErrorIs(t, err, ErrInvalidArea)
			require.Equal(t, float64(1), g.AreaSqM())
		}
	})
}

// Random add/remove sequences keep the registry equal to an ordered model.
func TestGallery_RegistryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, err := New("Heaven", "Sofia", 1, true)
		require.NoError(t, err)

		var want []Exhibition
		names := rapid.SampledFrom([]string{"A", "B", "C", "D"})
		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			name := names.Draw(t, "name")
			pos := -1
			for j, e := range want {
				if e.Name == name {
					pos = j
				}
			}
			if rapid.Bool().Draw(t, "add") {
				year := rapid.IntRange(1900, 2100).Draw(t, "year")
				msg := g.AddExhibition(name, year)
				if pos >= 0 {
					require.Equal(t, fmt.Sprintf("Exhibition \"%s\" already exists.", name), msg)
				} else {
					want = append(want, Exhibition{Name: name, Year: year})
				}
			} else {
				msg := g.RemoveExhibition(name)
				if pos >= 0 {
					want = append(want[:pos], want[pos+1:]...)
					require.Equal(t, fmt.Sprintf("Exhibition \"%s\" removed.", name), msg)
				} else {
					require.Equal(t, fmt.Sprintf("Exhibition \"%s\" not found.", name), msg)
				}
			}
			got := g.Exhibitions()
			if len(want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, want, got)
			}
		}
	})
}
