// Package render converts half-edge diagrams to Graphviz DOT and SVG for
// visual inspection.
//
// The rendering is schematic, not geometric: diagrams carry no coordinates,
// so Graphviz lays out vertices freely. Half-edges are drawn as directed
// arcs labeled with their face and scalar tag, which makes twin pairs and
// boundary cycles easy to follow by eye.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	herrors "github.com/matzehuels/hedi/pkg/errors"
	"github.com/matzehuels/hedi/pkg/hedge"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes twin handles, scalar tags, and metadata in labels.
	// When false, edges are labeled with their face only.
	Detailed bool
}

// facePalette cycles across face indices so neighboring boundaries are
// visually distinct.
var facePalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// Diagram is the metadata-carrying instantiation rendered by this package.
type Diagram = hedge.Diagram[hedge.Metadata, hedge.Metadata, hedge.Metadata]

// ToDOT converts a diagram to Graphviz DOT format. The resulting DOT string
// can be rendered with [RenderSVG].
//
// Edges with no face assigned are drawn dashed and grey.
func ToDOT(d *Diagram, opts Options) (string, error) {
	return toDOT(d, d.Edges(), opts)
}

// FaceToDOT renders a single face's boundary: only its edges and the
// vertices they touch are emitted.
func FaceToDOT(d *Diagram, f hedge.Face, opts Options) (string, error) {
	edges, err := d.FaceEdges(f)
	if err != nil {
		return "", err
	}
	return toDOT(d, edges, opts)
}

func toDOT(d *Diagram, edges []hedge.Edge, opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph halfedge {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	used := make(map[hedge.Vertex]struct{}, d.VertexCount())
	for _, e := range edges {
		src, _ := d.Source(e)
		trg, _ := d.Target(e)
		used[src] = struct{}{}
		used[trg] = struct{}{}
	}

	for _, v := range d.Vertices() {
		if _, ok := used[v]; !ok {
			continue
		}
		label := vertexLabel(d, v, opts.Detailed)
		fmt.Fprintf(&buf, "  v%d [label=%q];\n", v, label)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		src, _ := d.Source(e)
		trg, _ := d.Target(e)
		fmt.Fprintf(&buf, "  v%d -> v%d [%s];\n", src, trg, strings.Join(edgeAttrs(d, e, opts.Detailed), ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func vertexLabel(d *Diagram, v hedge.Vertex, detailed bool) string {
	label := fmt.Sprintf("%d", v)
	if !detailed {
		return label
	}
	meta, err := d.VertexData(v)
	if err != nil || len(*meta) == 0 {
		return label
	}
	parts := []string{label}
	for _, k := range slices.Sorted(maps.Keys(*meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, (*meta)[k]))
	}
	return strings.Join(parts, "\n")
}

func edgeAttrs(d *Diagram, e hedge.Edge, detailed bool) []string {
	f, _ := d.FaceOf(e)

	label := fmt.Sprintf("e%d f%d", e, f)
	if detailed {
		twin, _ := d.Twin(e)
		k, _ := d.K(e)
		label = fmt.Sprintf("e%d f%d t%d k=%g", e, f, twin, k)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	if f == hedge.NoFace {
		attrs = append(attrs, "style=dashed", "color=grey", "fontcolor=grey")
	} else {
		color := facePalette[int(f)%len(facePalette)]
		attrs = append(attrs, fmt.Sprintf("color=%q", color), fmt.Sprintf("fontcolor=%q", color))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the opening svg tag so the image scales cleanly
// in browsers regardless of the Graphviz-emitted points units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
