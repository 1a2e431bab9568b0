package stategraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/solver"
)

// ErrNilGraph is returned when the graph argument is nil, which usually
// means Solve ran without solver.WithKeepGraph.
var ErrNilGraph = errors.New("stategraph: graph is nil")

// Write renders the explored graph as a DOT digraph onto w. Node N0 is the
// root state; every node is labeled with the XSB rendering of its state
// and every edge with the producing step.
func Write(w io.Writer, g *solver.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `    graph [fontname = "monospace"];`)
	fmt.Fprintln(bw, `    node [fontname = "monospace", shape = box];`)
	fmt.Fprintln(bw, `    edge [fontname = "monospace"];`)

	b := g.Board()
	for i := 0; i < g.Len(); i++ {
		nd := g.Node(i)
		fmt.Fprintf(bw, "    N%d [label=\"%s\"];\n",
			i, escapeLabel(b.RenderState(board.FormatXSB, nd.Player, nd.Boxes)))
	}
	for i := 0; i < g.Len(); i++ {
		nd := g.Node(i)
		if nd.Parent < 0 {
			continue
		}
		fmt.Fprintf(bw, "    N%d -> N%d [label=\"%c\"];\n",
			nd.Parent, i, nd.Dir.Rune(nd.Push))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// WriteFile writes the DOT rendering to path. A path ending in ".zst" is
// zstd-compressed on the fly.
func WriteFile(path string, g *solver.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stategraph: create %s: %w", path, err)
	}

	var werr error
	if strings.HasSuffix(path, ".zst") {
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			f.Close()
			return fmt.Errorf("stategraph: zstd writer: %w", zerr)
		}
		werr = Write(zw, g)
		if cerr := zw.Close(); werr == nil {
			werr = cerr
		}
	} else {
		werr = Write(f, g)
	}

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("stategraph: write %s: %w", path, werr)
	}
	return nil
}

// escapeLabel turns a multi-line board rendering into a DOT label string.
// \l left-justifies each line, which keeps the ASCII picture aligned.
func escapeLabel(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		for _, r := range line {
			switch r {
			case '"', '\\':
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		sb.WriteString(`\l`)
	}
	return sb.String()
}
