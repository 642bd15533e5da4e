package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/piwi3910/FloorFit/internal/engine"
	"github.com/piwi3910/FloorFit/internal/model"
)

// ToDOT converts a run's corridor network to Graphviz DOT format. Rows and
// entrances become nodes; corridors become edges styled by class, with
// secondary corridors dashed.
func ToDOT(result engine.Result) string {
	var buf bytes.Buffer
	buf.WriteString("graph corridors {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=lightyellow, fontsize=10];\n")
	buf.WriteString("\n")

	for _, row := range result.Rows {
		fmt.Fprintf(&buf, "  %q [label=\"Row %d\\n%d units\", pos=\"%.2f,%.2f!\"];\n",
			rowNode(row.ID), row.ID, len(row.Units), row.Center.X, row.Center.Y)
	}
	for _, e := range result.Plan.Entrances {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=lightcoral, pos=\"%.2f,%.2f!\"];\n",
			entranceNode(e.ID), e.ID, e.Position.X, e.Position.Y)
	}

	buf.WriteString("\n")
	for _, c := range result.Corridors {
		from, to, ok := edgeEndpoints(c)
		if !ok {
			continue
		}
		attrs := []string{fmt.Sprintf("label=\"%.1fm\"", c.Length), "fontsize=8"}
		switch c.Type {
		case model.CorridorMain:
			attrs = append(attrs, "penwidth=2")
		case model.CorridorSecondary:
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", from, to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// edgeEndpoints maps a corridor to graph node names. Secondary corridors
// connect unit groups rather than named rows, so they are drawn between
// synthetic point nodes.
func edgeEndpoints(c model.Corridor) (string, string, bool) {
	switch c.Type {
	case model.CorridorMain:
		if len(c.RowIDs) < 1 {
			return "", "", false
		}
		return entranceNode(c.EntranceID), rowNode(c.RowIDs[0]), true
	case model.CorridorFacing:
		if len(c.RowIDs) < 2 {
			return "", "", false
		}
		return rowNode(c.RowIDs[0]), rowNode(c.RowIDs[1]), true
	default:
		if len(c.Points) < 2 {
			return "", "", false
		}
		a := fmt.Sprintf("p_%.1f_%.1f", c.Start().X, c.Start().Y)
		b := fmt.Sprintf("p_%.1f_%.1f", c.End().X, c.End().Y)
		return a, b, true
	}
}

func rowNode(id int) string      { return fmt.Sprintf("row_%d", id) }
func entranceNode(id string) string { return "ent_" + id }

// RenderGraphSVG renders the corridor network to SVG via Graphviz.
func RenderGraphSVG(result engine.Result) ([]byte, error) {
	return renderGraph(result, graphviz.SVG)
}

// RenderGraphPNG renders the corridor network to PNG via Graphviz.
func RenderGraphPNG(result engine.Result) ([]byte, error) {
	return renderGraph(result, graphviz.PNG)
}

func renderGraph(result engine.Result, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(result)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportGraph writes the corridor network rendering to path. The format is
// chosen from the file extension: .svg, .png, or .dot.
func ExportGraph(path string, result engine.Result) error {
	var data []byte
	var err error
	switch {
	case strings.HasSuffix(path, ".png"):
		data, err = RenderGraphPNG(result)
	case strings.HasSuffix(path, ".dot"):
		data = []byte(ToDOT(result))
	default:
		data, err = RenderGraphSVG(result)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
