// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strconv"
	"strings"
)

// NoColor is rendered as "none".
const NoColor Color = "none"

// Color is an SVG paint value such as "red", "rgb(1,2,3)" or
// "rgba(1,2,3,0.5)".
type Color string

// RGB returns the rgb(r,g,b) color.
func RGB(r, g, b uint8) Color {
	return Color("rgb(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + ")")
}

// RGBA returns the rgba(r,g,b,opacity) color.
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color("rgba(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) +
		"," + formatNumber(opacity) + ")")
}

// Point is a position on the canvas.
type Point struct {
	X float64 `validate:"gte=-100000,lte=100000"`
	Y float64 `validate:"gte=-100000,lte=100000"`
}

// LineCap is the stroke-linecap attribute.
type LineCap string

// LineJoin is the stroke-linejoin attribute.
type LineJoin string

// Line caps and joins used by the map.
const (
	LineCapRound  LineCap  = "round"
	LineJoinRound LineJoin = "round"
)

// PathProps are the presentation attributes shared by every shape.
// Zero values are omitted from the output.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
}

func (p PathProps) writeAttrs(b *strings.Builder) {
	if p.Fill != "" {
		writeAttr(b, "fill", string(p.Fill))
	}
	if p.Stroke != "" {
		writeAttr(b, "stroke", string(p.Stroke))
	}
	if p.StrokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != "" {
		writeAttr(b, "stroke-linecap", string(p.LineCap))
	}
	if p.LineJoin != "" {
		writeAttr(b, "stroke-linejoin", string(p.LineJoin))
	}
}

// Object is one SVG element.
type Object interface {
	writeTo(b *strings.Builder)
}

// Circle is a <circle> element.
type Circle struct {
	Center Point
	Radius float64
	PathProps
}

func (c Circle) writeTo(b *strings.Builder) {
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(c.Center.X))
	writeAttr(b, "cy", formatNumber(c.Center.Y))
	writeAttr(b, "r", formatNumber(c.Radius))
	c.writeAttrs(b)
	b.WriteString(" />")
}

// Polyline is a <polyline> element.
type Polyline struct {
	Points []Point
	PathProps
}

func (p Polyline) writeTo(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteByte('"')
	p.writeAttrs(b)
	b.WriteString("/>")
}

// Text is a <text> element. FontFamily and FontWeight are omitted when empty.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string
	Data       string
	PathProps
}

func (t Text) writeTo(b *strings.Builder) {
	b.WriteString("<text")
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.Itoa(t.FontSize))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", t.FontWeight)
	}
	t.writeAttrs(b)
	b.WriteByte('>')
	b.WriteString(escaper.Replace(t.Data))
	b.WriteString("</text>")
}

// Document is an ordered list of SVG elements; later ones are drawn on top.
type Document struct {
	objects []Object
}

// Add appends obj to the document.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Len returns the number of elements.
func (d *Document) Len() int { return len(d.objects) }

// String renders the whole document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeTo(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")

	return b.String()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

var escaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
)

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

// formatNumber prints v with six significant digits and no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
