// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package html renders a block.File into HTML.
//
// block.Header nodes correspond to <h1>..<h6> (clamped to <p> past
// block.MaxHeaderLevel) and carry a heading id computed by
// sanitized_anchor_name. block.Paragraph nodes correspond to <p>, with
// Bold/Italic spans rendered as nested <strong>/<em> runs.
package html // import "github.com/huydao/mdspan/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"io/ioutil"
	"strconv"
	"sync"

	sanitizedanchorname "github.com/shurcooL/sanitized_anchor_name"

	"github.com/huydao/mdspan/block"
	"github.com/huydao/mdspan/inline"
	"github.com/huydao/mdspan/span"
)

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	n, err = s.w.Write(p)
	return
}

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator is a non-reusable HTML output generator for a block.File.
type Generator struct {
	// Stdout and Stderr specify the generator's standard output and
	// standard error. HTML output is written to Stdout; Stderr currently
	// goes unused by the generation loop but is kept in case a future
	// external-process stage needs somewhere to write.
	//
	// If Stdout == Stderr, at most one goroutine at a time will call Write.
	Stdout   io.Writer
	Stderr   io.Writer
	ctx      context.Context
	file     block.File
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator to convert f into HTML output.
func Gen(f block.File) *Generator {
	return &Generator{ctx: context.Background(), file: f}
}

// GenContext is like Gen but includes a context used to halt generation
// between blocks.
func GenContext(ctx context.Context, f block.File) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, file: f}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.Stdout == nil {
		g.Stdout = ioutil.Discard
	}
	if g.Stderr == nil {
		g.Stderr = ioutil.Discard
	}
	if g.Stdout == g.Stderr {
		g.Stdout = &syncWriter{w: g.Stdout}
		g.Stderr = g.Stdout
	}
	g.waitdone = make(chan error)
	go func() {
		err := g.gen()
		for _, p := range g.pipes {
			p.Close()
		}
		g.m.Lock()
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to Stdout.
// It is an error to call Wait before Start has been called.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	g.m.Lock()
	if g.pipes != nil {
		g.m.Unlock()
		return fmt.Errorf("all reads from the pipe have not completed")
	}
	g.m.Unlock()
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe connected to the generator's standard output.
//
// It is invalid to call Wait until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var buf bytes.Buffer
	g.Stdout = &buf
	err := g.Run()
	return buf.Bytes(), err
}

// Generate runs generation synchronously over f and writes HTML to w. It is
// the direct, non-goroutine entry point used by cmd/mdspan.
func Generate(ctx context.Context, f block.File, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g := GenContext(ctx, f)
	g.Stdout = w
	g.Stderr = ioutil.Discard
	return g.gen()
}

func (g *Generator) gen() error {
	cw := &stickyCountWriter{w: g.Stdout}
	for i := range g.file.Blocks {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
		}
		switch b := g.file.Blocks[i].(type) {
		case *block.Paragraph:
			if len(b.Text) == 0 {
				continue
			}
			cw.Write([]byte("<p>"))
			writeRun(cw, b.Text, b.Spans)
			cw.Write([]byte("</p>"))
		case *block.Header:
			tag := "h" + strconv.Itoa(b.Level)
			if b.Level > block.MaxHeaderLevel {
				tag = "p"
			}
			id := sanitizedanchorname.Create(b.Text)
			fmt.Fprintf(cw, "<%s id=%q>", tag, id)
			cw.Write([]byte(html.EscapeString(inline.RestoreAsterisks(b.Text))))
			fmt.Fprintf(cw, "</%s>", tag)
		}
	}
	return cw.err
}

// writeRun renders text (already stripped of markers) as HTML, escaping it
// and wrapping the byte ranges named by spans in properly nested
// <strong>/<em> tags. Overlapping spans in the input (e.g. a Bold span and
// an Italic span sharing the same range) become nested tags via a small
// stack build over the already-sorted span list. Span offsets index text as
// it still holds the escaped-asterisk sentinel, so each slice is passed
// through inline.RestoreAsterisks only after it has been cut out.
func writeRun(w io.Writer, text string, spans []span.Span) {
	roots := buildSpanForest(spans)
	writeNodes(w, text, roots)
}

type spanNode struct {
	span     span.Span
	children []*spanNode
}

// buildSpanForest arranges spans (sorted by Start, as inline.Parse
// guarantees) into a forest of properly nested nodes. Spans never cross:
// each one either starts after its predecessor on the stack has ended, or
// falls entirely inside it.
func buildSpanForest(spans []span.Span) []*spanNode {
	var roots []*spanNode
	var stack []*spanNode
	for _, s := range spans {
		n := &spanNode{span: s}
		for len(stack) > 0 && stack[len(stack)-1].span.End <= s.Start {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
		}
		stack = append(stack, n)
	}
	return roots
}

func writeNodes(w io.Writer, text string, nodes []*spanNode) {
	for _, n := range nodes {
		switch n.span.Style {
		case span.Bold:
			io.WriteString(w, "<strong>")
		case span.Italic:
			io.WriteString(w, "<em>")
		}
		if len(n.children) == 0 {
			io.WriteString(w, html.EscapeString(inline.RestoreAsterisks(text[n.span.Start:n.span.End])))
		} else {
			writeLeavesAndChildren(w, text, n)
		}
		switch n.span.Style {
		case span.Bold:
			io.WriteString(w, "</strong>")
		case span.Italic:
			io.WriteString(w, "</em>")
		}
	}
}

// writeLeavesAndChildren interleaves a node's own text with its nested
// children, since a styled span's children only ever cover a subrange of
// it (e.g. Bold wrapping an inner Italic run within a longer bold phrase).
func writeLeavesAndChildren(w io.Writer, text string, n *spanNode) {
	cursor := n.span.Start
	for _, c := range n.children {
		if cursor < c.span.Start {
			io.WriteString(w, html.EscapeString(inline.RestoreAsterisks(text[cursor:c.span.Start])))
		}
		writeNodes(w, text, []*spanNode{c})
		cursor = c.span.End
	}
	if cursor < n.span.End {
		io.WriteString(w, html.EscapeString(inline.RestoreAsterisks(text[cursor:n.span.End])))
	}
}
