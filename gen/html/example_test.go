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

// Examples for html.go
package html_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/huydao/mdspan/block"
	"github.com/huydao/mdspan/gen/html"
)

func ExampleGenerate() {
	src := `# Heading 1
This is a paragraph with *something* emphasized.
`
	f, err := block.Parse(strings.NewReader(src))
	if err != nil {
		log.Fatal(err)
	}

	var out bytes.Buffer
	if err := html.Generate(nil, f, &out); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.String())
	// Output:
	// <h1 id="heading-1">Heading 1</h1><p>This is a paragraph with <em>something</em> emphasized.</p>
}

func ExampleGen() {
	f, err := block.Parse(strings.NewReader("**bold** and *italic*"))
	if err != nil {
		log.Fatal(err)
	}

	g := html.Gen(f)
	var out bytes.Buffer
	g.Stdout = &out

	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.String())
	// Output:
	// <p><strong>bold</strong> and <em>italic</em></p>
}
