package report

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

func TestWrite(t *testing.T) {
	matches := []dogsearch.Match{
		{X: 3, Y: 1, Direction: dogsearch.RowRightToLeft},
		{X: 8, Y: 3, Direction: dogsearch.DiagonalTopLeftToBottomRight},
	}

	var buf bytes.Buffer
	n, err := Write(&buf, slices.Values(matches))
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, "1: 3,1 (row left -> right)\n"+
		"2: 8,3 (diagonal topleft -> bottomright)\n"+
		"Found 2 matches.\n", buf.String())
}

func TestWrite_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, slices.Values([]dogsearch.Match(nil)))
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Equal(t, "Found 0 matches.\n", buf.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	matches := slices.Values([]dogsearch.Match{
		{X: 1, Y: 1, Direction: dogsearch.ColumnTopToBottom},
	})

	_, err := Write(&failingWriter{after: 0}, matches)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match 1")

	_, err = Write(&failingWriter{after: 1}, matches)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary")
}
