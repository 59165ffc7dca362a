// Package geometry decodes the coordinate encodings a directions response
// uses: encoded polyline strings and raw coordinate pairs.
package geometry
