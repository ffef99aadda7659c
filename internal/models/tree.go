package models

import "strings"

/**
 * ConfigTree is a nested category -> parameter -> value map, the shape the
 * baseline defaults, profile overrides and composed output all share.
 * @description
 * - An alias, not a defined type, so trees decoded from JSON as
 *   map[string]any satisfy it without conversion
 * - Leaf values are bool, int, float64 (from JSON), string or []string
 */
type ConfigTree = map[string]any

/**
 * Clone returns a deep copy of a tree; mutating the copy never touches
 * the original.
 */
func Clone(tree ConfigTree) ConfigTree {
	if tree == nil {
		return nil
	}
	out := make(ConfigTree, len(tree))
	for key, value := range tree {
		out[key] = CloneValue(value)
	}
	return out
}

/**
 * CloneValue deep-copies a single tree value: nested trees and lists are
 * copied, scalars pass through.
 */
func CloneValue(value any) any {
	switch v := value.(type) {
	case ConfigTree:
		return Clone(v)
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	}
	return value
}

/**
 * Lookup resolves a dotted path ("category.parameter") against a tree.
 * @param {ConfigTree} tree - Tree to search
 * @param {string} path - Dotted path, each segment a map key
 * @returns {any, bool} Value at the path and whether it exists; an
 *   intermediate non-map segment means absent
 */
func Lookup(tree ConfigTree, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := any(tree)
	for _, segment := range segments {
		node, ok := current.(ConfigTree)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
