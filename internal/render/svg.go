package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/Rillus/Calendar-sub001/internal/ring"
)

// SVGOptions controls the ring document
type SVGOptions struct {
	// MinX and MinY are the top-left corner of the viewBox
	MinX     float64
	MinY     float64
	Width    float64
	Height   float64
	FontSize float64
	Title    string
}

// DefaultSVGOptions sizes the document to fit a ring of geometry g
func DefaultSVGOptions(g ring.Geometry) SVGOptions {
	return SVGOptions{
		MinX:     g.CenterX - g.Radius,
		MinY:     g.CenterY - g.Radius,
		Width:    2 * g.Radius,
		Height:   2 * g.Radius,
		FontSize: g.Radius / 12,
	}
}

// WriteSVG writes a standalone SVG document with one path and one label per segment
func WriteSVG(w io.Writer, segments []ring.Segment, opts SVGOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(opts.Width), num(opts.Height), num(opts.MinX), num(opts.MinY), num(opts.Width), num(opts.Height))
	if opts.Title != "" {
		fmt.Fprintf(bw, "  <title>%s</title>\n", html.EscapeString(opts.Title))
	}

	for _, s := range segments {
		fmt.Fprintf(bw, `  <path class="segment" data-index="%d" d="%s" fill="%s"/>`+"\n",
			s.Index, s.Path.SVG(), s.Colour.Hex())
	}
	for _, s := range segments {
		x, y := num(s.LabelPosition.X), num(s.LabelPosition.Y)
		fmt.Fprintf(bw, `  <text class="label" x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="hanging" transform="rotate(%s %s %s)">%s</text>`+"\n",
			x, y, num(opts.FontSize), num(s.LabelRotationDegrees), x, y, html.EscapeString(s.Label))
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
