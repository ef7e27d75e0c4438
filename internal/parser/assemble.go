package parser

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// assemble builds the node for kind from d.text[lo:hi], the text between the
// outermost parentheses of a literal.
func (d *dispatcher) assemble(kind Kind, lo, hi, depth int) (Geometry, error) {
	body := d.text[lo:hi]
	switch kind {
	case KindPoint:
		c, err := parseCoordinate(body)
		if err != nil {
			return nil, err
		}
		return &Point{Coord: c}, nil

	case KindLineString:
		seq, err := parseCoordinateList(body)
		if err != nil {
			return nil, err
		}
		return &LineString{Coords: seq}, nil

	case KindMultiPoint:
		points, err := parseMultiPointBody(body)
		if err != nil {
			return nil, err
		}
		return &MultiPoint{Points: points}, nil

	case KindPolygon:
		rings, err := parseSequenceList(body)
		if err != nil {
			return nil, err
		}
		return &Polygon{Rings: rings}, nil

	case KindMultiLineString:
		lines, err := parseSequenceList(body)
		if err != nil {
			return nil, err
		}
		return &MultiLineString{Lines: lines}, nil

	case KindMultiPolygon:
		parts, err := splitGroups(body)
		if err != nil {
			return nil, err
		}
		polygons := make([][]CoordinateSequence, 0, len(parts))
		for _, part := range parts {
			rings, err := parseSequenceList(part)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, rings)
		}
		return &MultiPolygon{Polygons: polygons}, nil

	case KindGeometryCollection:
		return d.assembleCollection(lo, hi, depth)
	}
	return nil, &ParseError{Kind: UnsupportedGeometryType, Keyword: kind.Keyword()}
}

// parseMultiPointBody accepts both "(x y),(x y)" and "x y, x y".
func parseMultiPointBody(body string) (CoordinateSequence, error) {
	if !strings.HasPrefix(strings.TrimSpace(body), "(") {
		return parseCoordinateList(body)
	}
	groups, err := splitGroups(body)
	if err != nil {
		return nil, err
	}
	points := make(CoordinateSequence, 0, len(groups))
	for _, g := range groups {
		c, err := parseCoordinate(g)
		if err != nil {
			return nil, err
		}
		points = append(points, c)
	}
	return points, nil
}

// parseSequenceList parses "(x y, ...),(x y, ...)" into one sequence per group.
func parseSequenceList(body string) ([]CoordinateSequence, error) {
	groups, err := splitGroups(body)
	if err != nil {
		return nil, err
	}
	seqs := make([]CoordinateSequence, 0, len(groups))
	for _, g := range groups {
		seq, err := parseCoordinateList(g)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

func (d *dispatcher) assembleCollection(lo, hi, depth int) (Geometry, error) {
	if d.opts.MaxDepth > 0 && depth >= d.opts.MaxDepth {
		return nil, structureError("", fmt.Sprintf("collection nesting exceeds %d levels", d.opts.MaxDepth))
	}
	members, err := d.decompose(lo, hi)
	if err != nil {
		return nil, err
	}
	children := make([]Geometry, 0, len(members))
	for i, m := range members {
		child, err := d.parse(m.lo, m.hi, depth+1)
		if err != nil {
			return nil, errors.Wrapf(err, "collection member %d", i+1)
		}
		children = append(children, child)
	}
	return &GeometryCollection{Geometries: children}, nil
}
