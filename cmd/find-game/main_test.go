package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGame(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--category", "retro", "--sort", "price-low"})

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Found 3 of 6 items")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Tetris")), bytes.Index(out.Bytes(), []byte("Pac-Man")))
}
