// Package arcpath builds backend-neutral path descriptions for ring wedges.
//
// A Path is an ordered list of move, line, elliptical-arc and close commands
// with absolute coordinates. Renderers translate it to their own primitives;
// SVG path data is provided by Path.SVG.
package arcpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rillus/Calendar-sub001/pkg/anglemath"
)

// Op identifies a drawing instruction
type Op int

const (
	OpMove Op = iota + 1
	OpLine
	OpArc
	OpClose
)

// String returns the SVG command letter for the op
func (o Op) String() string {
	switch o {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	default:
		return "?"
	}
}

// MarshalText encodes the op as its command letter
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Command is a single drawing instruction. Arc fields are only meaningful for OpArc.
type Command struct {
	Op       Op              `json:"op" yaml:"op"`
	To       anglemath.Point `json:"to" yaml:"to"`
	RX       float64         `json:"rx,omitempty" yaml:"rx,omitempty"`
	RY       float64         `json:"ry,omitempty" yaml:"ry,omitempty"`
	LargeArc bool            `json:"large_arc,omitempty" yaml:"large_arc,omitempty"`
	Sweep    bool            `json:"sweep,omitempty" yaml:"sweep,omitempty"`
}

// Path is an immutable ordered command sequence
type Path struct {
	Commands []Command `json:"commands" yaml:"commands"`
}

// Len returns the number of commands
func (p Path) Len() int {
	return len(p.Commands)
}

// SVG renders the path as SVG path data ("M x y L x y A ... Z")
func (p Path) SVG() string {
	var sb strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Op.String())
		switch c.Op {
		case OpMove, OpLine:
			sb.WriteString(" " + formatCoord(c.To.X) + " " + formatCoord(c.To.Y))
		case OpArc:
			sb.WriteString(" " + formatCoord(c.RX) + " " + formatCoord(c.RY) + " 0 " +
				flag(c.LargeArc) + " " + flag(c.Sweep) + " " +
				formatCoord(c.To.X) + " " + formatCoord(c.To.Y))
		}
	}
	return sb.String()
}

func formatCoord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Builder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type Builder struct {
	commands []Command
}

// BuildPath starts a new path builder
func BuildPath() *Builder {
	return &Builder{}
}

// MoveTo moves to a new position
func (b *Builder) MoveTo(p anglemath.Point) *Builder {
	b.commands = append(b.commands, Command{Op: OpMove, To: p})
	return b
}

// LineTo draws a line to a position
func (b *Builder) LineTo(p anglemath.Point) *Builder {
	b.commands = append(b.commands, Command{Op: OpLine, To: p})
	return b
}

// ArcTo draws a circular arc of radius r to a position
func (b *Builder) ArcTo(r float64, largeArc, sweep bool, p anglemath.Point) *Builder {
	b.commands = append(b.commands, Command{Op: OpArc, To: p, RX: r, RY: r, LargeArc: largeArc, Sweep: sweep})
	return b
}

// Close closes the current subpath
func (b *Builder) Close() *Builder {
	b.commands = append(b.commands, Command{Op: OpClose})
	return b
}

// Build returns the constructed path. The builder must not be reused afterwards.
func (b *Builder) Build() Path {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return Path{Commands: out}
}
