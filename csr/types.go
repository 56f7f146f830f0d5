// SPDX-License-Identifier: MIT

// Package csr: value types exchanged with producers and consumers.
// Only plain data lives here: coordinate triples and the ordered-pair key
// that replaces the legacy "row,col" textual encoding.
package csr

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// keySep separates row and column in the textual key encoding.
const keySep = ","

// Triple is one logical matrix entry before compression.
type Triple struct {
	Row   int     // zero-based row index
	Col   int     // zero-based column index
	Value float64 // entry value; summed with any duplicate coordinate
}

// Coord is an ordered (row, col) pair used as a map key.
// Comparable by value, so map[Coord]float64 is a dictionary-of-keys matrix.
type Coord struct {
	Row int
	Col int
}

// String renders the legacy textual key "row,col".
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + keySep + strconv.Itoa(c.Col)
}

// ParseCoord parses a textual "row,col" key. Surrounding blanks around each
// component are tolerated; anything else fails with ErrMalformedKey.
// Complexity: O(len(s)).
func ParseCoord(s string) (Coord, error) {
	rs, cs, ok := strings.Cut(s, keySep)
	if !ok {
		return Coord{}, csrErrorf(opParseCoord, fmt.Errorf("%q: %w", s, ErrMalformedKey))
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, csrErrorf(opParseCoord, fmt.Errorf("%q: row: %w", s, ErrMalformedKey))
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Coord{}, csrErrorf(opParseCoord, fmt.Errorf("%q: col: %w", s, ErrMalformedKey))
	}

	return Coord{Row: r, Col: c}, nil
}

// compareTriples orders triples lexicographically by (Row, Col).
func compareTriples(a, b Triple) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}
