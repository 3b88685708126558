package svg

import (
	"io"
	"strings"
)

// Document is an ordered list of objects; later objects draw on top
type Document struct {
	objects []Object
}

func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

func (d *Document) Len() int { return len(d.objects) }

// String renders the document
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>`)
	b.WriteString("\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`)
	b.WriteString("\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeTo(&b)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}

// WriteTo renders the document to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
