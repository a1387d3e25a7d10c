package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/fsgraph/bfs"
	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/dijkstra"
	"github.com/katalvlaran/fsgraph/prim"
)

// Adjacency writes every vertex of g in pathid order with its successors in
// insertion order.
func Adjacency(w io.Writer, g *core.Graph, style Style) error {
	switch style {
	case StylePlain:
		return adjacencyPlain(w, g)
	case StyleTable:
		return adjacencyTable(w, g)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}

func adjacencyPlain(w io.Writer, g *core.Graph) error {
	var b strings.Builder
	for _, v := range g.Vertices() {
		b.WriteString(v)
		b.WriteString(":\n")
		for _, n := range g.Neighbors(v) {
			b.WriteString("  ")
			b.WriteString(n)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func adjacencyTable(w io.Writer, g *core.Graph) error {
	if g.VertexCount() == 0 {
		_, err := fmt.Fprintln(w, "(0 vertices)")
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Vertex", "Out", "Successors"})
	for _, v := range g.Vertices() {
		succ := g.Neighbors(v)
		t.AppendRow(table.Row{v, len(succ), strings.Join(succ, "\n")})
	}
	_, err := fmt.Fprintf(w, "%s\n(%s vertices, %s edges)\n",
		t.Render(), humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())))

	return err
}

// Path writes "a -> b -> c (2 hops)".
func Path(w io.Writer, r *dijkstra.Result) error {
	if r == nil || r.Len() == 0 {
		_, err := fmt.Fprintln(w, "(no path)")
		return err
	}
	unit := "hops"
	if r.Hops == 1 {
		unit = "hop"
	}
	_, err := fmt.Fprintf(w, "%s (%d %s)\n", strings.Join(r.Path, " -> "), r.Hops, unit)

	return err
}

// Tree writes the spanning tree as a connected go-pretty list rooted at
// t.Root, children in visit order.
func Tree(w io.Writer, t *prim.Tree) error {
	if t == nil || t.Len() == 0 {
		_, err := fmt.Fprintln(w, "(empty tree)")
		return err
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)

	// Explicit stack of (vertex, depth); depth drives Indent/UnIndent.
	type item struct {
		v     string
		depth int
	}
	stack := []item{{t.Root, 0}}
	level := 0
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for ; level < it.depth; level++ {
			l.Indent()
		}
		for ; level > it.depth; level-- {
			l.UnIndent()
		}
		l.AppendItem(it.v)
		kids := t.Children[it.v]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], it.depth + 1})
		}
	}
	_, err := fmt.Fprintf(w, "%s\n(%s vertices, %s edges)\n",
		l.Render(), humanize.Comma(int64(t.Len())), humanize.Comma(int64(t.EdgeCount())))

	return err
}

// Report writes a one-line build summary and, when entries failed, a table
// of the recovered errors.
func Report(w io.Writer, r *builder.Report) error {
	if r == nil {
		return nil
	}
	if r.Status == builder.StatusInvalidRoot {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Status, r.Root); err != nil {
			return err
		}
	} else {
		_, err := fmt.Fprintf(w, "%s: %s (%s directories, %s entries, %s excluded, %s errors)\n",
			r.Status, r.Root,
			humanize.Comma(int64(r.Dirs)), humanize.Comma(int64(r.Entries)),
			humanize.Comma(int64(r.Excluded)), humanize.Comma(int64(len(r.Errors))))
		if err != nil {
			return err
		}
	}
	if len(r.Errors) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Path", "Op", "Depth", "Error"})
	for _, e := range r.Errors {
		t.AppendRow(table.Row{e.Path, e.Op, e.Depth, e.Err})
	}
	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// Reach writes a level-by-level walk. Plain indents each path two spaces per
// level; table lists depth, path and parent, then the counts.
func Reach(w io.Writer, r *bfs.Result, style Style) error {
	if r == nil || r.Len() == 0 {
		_, err := fmt.Fprintln(w, "(nothing reached)")
		return err
	}

	switch style {
	case StylePlain:
		var b strings.Builder
		for _, v := range r.Visits {
			b.WriteString(strings.Repeat("  ", v.Depth))
			b.WriteString(v.Path)
			b.WriteByte('\n')
		}
		_, err := io.WriteString(w, b.String())

		return err
	case StyleTable:
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Depth", "Path", "Parent"})
		for _, v := range r.Visits {
			t.AppendRow(table.Row{v.Depth, v.Path, v.Parent})
		}
		_, err := fmt.Fprintf(w, "%s\n(%s paths, %s levels, %s pruned)\n",
			t.Render(), humanize.Comma(int64(r.Len())),
			humanize.Comma(int64(len(r.Layers()))), humanize.Comma(int64(r.Pruned)))

		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}
