package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/beka-birhanu/mazesolver/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedArgs(density float32, glyphs string) runArgs {
	ra := runArgs{Config: baseConfig(), GenWidth: 6, GenHeight: 4}
	ra.DecorDensity = density
	ra.DecorGlyphs = glyphs
	return ra
}

func TestGeneratedMaze(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		m, name, err := generatedMaze(generatedArgs(0, "*"), rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, "generated-6x4", name)
		assert.Equal(t, 9, m.Rows())
		assert.Equal(t, 13, m.Cols())
		assert.NotContains(t, m.String(), "*")
	})

	t.Run("decorated", func(t *testing.T) {
		m, _, err := generatedMaze(generatedArgs(1, "*"), rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		// Every room but the start and exit carries a decoration.
		assert.Equal(t, 6*4-2, strings.Count(m.String(), "*"))
	})

	t.Run("invalid decorations", func(t *testing.T) {
		_, _, err := generatedMaze(generatedArgs(0.5, "#"), rand.New(rand.NewSource(3)))
		assert.ErrorIs(t, err, generate.ErrInvalidDecorModel)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		ra := generatedArgs(0, "*")
		ra.GenWidth = 1
		ra.GenHeight = 1
		_, _, err := generatedMaze(ra, nil)
		assert.ErrorIs(t, err, generate.ErrInvalidDimensions)
	})
}
