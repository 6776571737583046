package ucdparse

import (
	"io"
	"unicode"
)

// RangeTableCollector is a type to collect character ranges during iteration
// of UCD files and turn them into a range table.
type RangeTableCollector struct {
	Property string // property value to collect, e.g. "White_Space"
	ranges   [][2]rune
}

// Append a range of runes to a range table collector. A single character is
// denoted by l == r. Ranges have to be appended in ascending order.
func (rt *RangeTableCollector) Append(l, r rune) {
	if n := len(rt.ranges); n > 0 && l == rt.ranges[n-1][1]+1 {
		rt.ranges[n-1][1] = r // range extends previous range
		return
	}
	rt.ranges = append(rt.ranges, [2]rune{l, r})
}

// Table creates a range table from the collected ranges.
func (rt *RangeTableCollector) Table() *unicode.RangeTable {
	table := &unicode.RangeTable{}
	for _, r := range rt.ranges {
		if r[1] <= unicode.MaxLatin1 {
			table.LatinOffset++
		}
		if r[1] <= 0xffff {
			table.R16 = append(table.R16, unicode.Range16{Lo: uint16(r[0]), Hi: uint16(r[1]), Stride: 1})
			continue
		}
		lo := r[0]
		if lo <= 0xffff { // split at the 16-bit boundary
			table.R16 = append(table.R16, unicode.Range16{Lo: uint16(lo), Hi: 0xffff, Stride: 1})
			lo = 0x10000
		}
		table.R32 = append(table.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(r[1]), Stride: 1})
	}
	return table
}

// Collect reads a UCD property file and returns a range table for all
// code-points whose first field equals property.
func Collect(r io.Reader, property string) (*unicode.RangeTable, error) {
	rt := &RangeTableCollector{Property: property}
	err := Parse(r, func(token *Token) {
		if token.Field(1) == property {
			rt.Append(token.Range())
		}
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("collected %d ranges for %s", len(rt.ranges), property)
	return rt.Table(), nil
}
