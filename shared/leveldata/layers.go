package leveldata

import (
	"errors"
	"fmt"
)

// LevelPropertyNames are checked in order for a layer's height level.
var LevelPropertyNames = []string{"Z", "z", "level"}

// ExtractLayers flattens a layer tree depth-first into one LayerEntry per
// tile layer. Object layers are skipped. A group's name is joined with "/"
// onto the names of everything below it.
func ExtractLayers(nodes []LayerNode) ([]LayerEntry, error) {
	var entries []LayerEntry
	if err := extractInto(&entries, nodes, ""); err != nil {
		return nil, err
	}
	return entries, nil
}

func extractInto(entries *[]LayerEntry, nodes []LayerNode, prefix string) error {
	for _, node := range nodes {
		name := qualify(prefix, node.LayerName())
		switch n := node.(type) {
		case *TileGrid:
			level, err := LayerLevel(&n.Properties)
			if err != nil {
				return withOwner(err, name)
			}
			*entries = append(*entries, LayerEntry{Grid: n, Level: level, QualifiedName: name})
		case *LayerGroup:
			if err := extractInto(entries, n.Children, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// LayerLevel reads the height level from "Z", "z" or "level", in that order.
// A layer without any of them sits on level 0.
func LayerLevel(props *Properties) (int, error) {
	for _, key := range LevelPropertyNames {
		v, ok := props.Get(key)
		if !ok {
			continue
		}
		level, err := AsInt(v)
		if err != nil {
			return 0, &PropertyParseError{Property: key, Type: TypeInt, Value: rawString(v), Err: err}
		}
		return level, nil
	}
	return 0, nil
}

func withOwner(err error, owner string) error {
	var perr *PropertyParseError
	if errors.As(err, &perr) && perr.Owner == "" {
		perr.Owner = owner
	}
	return err
}

func rawString(v PropertyValue) string {
	switch t := v.(type) {
	case StringValue:
		return string(t)
	case ColorValue:
		return fmt.Sprintf("#%02x%02x%02x%02x", t.A, t.R, t.G, t.B)
	default:
		return fmt.Sprint(v)
	}
}
