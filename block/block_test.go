// Tests for block.go
package block_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huydao/mdspan/block"
	"github.com/huydao/mdspan/span"
)

func TestParseClassifiesHeadersAndParagraphs(t *testing.T) {
	src := "# Title\n" +
		"## Subtitle  \n" +
		"a **bold** line\n" +
		"\n" +
		"####### too many hashes stays a paragraph\n"

	f, err := block.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, f.Blocks, 5)

	h1, ok := f.Blocks[0].(*block.Header)
	require.True(t, ok)
	assert.Equal(t, 1, h1.Level)
	assert.Equal(t, "Title", h1.Text)

	h2, ok := f.Blocks[1].(*block.Header)
	require.True(t, ok)
	assert.Equal(t, 2, h2.Level)
	assert.Equal(t, "Subtitle", h2.Text)

	p1, ok := f.Blocks[2].(*block.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "a bold line", p1.Text)
	require.Len(t, p1.Spans, 3)
	assert.Equal(t, span.Normal, p1.Spans[0].Style)
	assert.Equal(t, span.Bold, p1.Spans[1].Style)
	assert.Equal(t, "bold", p1.Text[p1.Spans[1].Start:p1.Spans[1].End])
	assert.Equal(t, span.Normal, p1.Spans[2].Style)

	p2, ok := f.Blocks[3].(*block.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "", p2.Text)
	assert.Empty(t, p2.Spans)

	p3, ok := f.Blocks[4].(*block.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "####### too many hashes stays a paragraph", p3.Text)
}

func TestParseEmptyInput(t *testing.T) {
	f, err := block.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Blocks)
}

// TestParseParagraphOrderUnderFanOut exercises enough paragraph lines that
// block.Parse's worker pool has more than one line to hand out, and checks
// that each paragraph's text still lands back in its original line order.
func TestParseParagraphOrderUnderFanOut(t *testing.T) {
	const n = 200
	var src strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&src, "line *%d*\n", i)
	}

	f, err := block.Parse(strings.NewReader(src.String()))
	require.NoError(t, err)
	require.Len(t, f.Blocks, n)

	for i := 0; i < n; i++ {
		p, ok := f.Blocks[i].(*block.Paragraph)
		require.True(t, ok, "line %d", i)
		want := "line " + strconv.Itoa(i)
		assert.Equal(t, want, p.Text, "line %d", i)
		require.Len(t, p.Spans, 2, "line %d", i)
		assert.Equal(t, span.Italic, p.Spans[1].Style, "line %d", i)
	}
}
