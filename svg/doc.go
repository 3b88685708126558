// Package svg is a small SVG document model: circles, polylines and text
// with fill and stroke properties, written out as an SVG 1.1 document.
//
// Serialization is done by hand with a strings.Builder so the output format
// is stable byte for byte. Text content is escaped for XML.
package svg
