// Package option builds the typed, documented option descriptors that make
// up the configuration schema. Construction is pure and deliberately
// permissive about defaults (a descriptor built with an out-of-range
// default is legal); Validate is where a candidate value, defaults
// included, is actually checked against the descriptor.
package option

import (
	"fmt"
	"sort"

	"sysconf-keeper/internal/models"
	"sysconf-keeper/internal/values"
)

/**
 * Kind enumerates the value shapes a descriptor can describe.
 */
type Kind string

const (
	Bool       Kind = "bool"
	Port       Kind = "port"
	Path       Kind = "path"
	StringList Kind = "stringList"
	Enum       Kind = "enum"
	Percentage Kind = "percentage"
	Memory     Kind = "memory"
	Schedule   Kind = "schedule"
	IntRange   Kind = "intRange"
	Network    Kind = "network"
	Submodule  Kind = "submodule"
)

const (
	portMin = 1
	portMax = 65535
)

/**
 * Descriptor describes one configurable setting.
 * @property {Kind} kind - Value shape
 * @property {any} default - Optional default matching kind
 * @property {any} example - Optional illustrative value
 * @property {string} description - Operator-facing documentation
 * @property {[]string} allowedValues - Members for Enum kind
 * @property {int} min/max - Bounds for Percentage and IntRange kinds
 * @property {map[string]*Descriptor} elem - Child schema for Submodule
 * @description
 * - Created once at declaration time, immutable thereafter
 * - Consumed by the merge engine to type-check and default-fill a raw
 *   settings tree; here it backs the type/bounds validation pass
 */
type Descriptor struct {
	Kind          Kind                   `json:"kind"`
	Default       any                    `json:"default,omitempty"`
	Example       any                    `json:"example,omitempty"`
	Description   string                 `json:"description"`
	AllowedValues []string               `json:"allowedValues,omitempty"`
	Min           int                    `json:"min,omitempty"`
	Max           int                    `json:"max,omitempty"`
	Elem          map[string]*Descriptor `json:"elem,omitempty"`
}

/**
 * NewBool builds a boolean option descriptor.
 */
func NewBool(def bool, description string) *Descriptor {
	return &Descriptor{Kind: Bool, Default: def, Description: description}
}

/**
 * NewPort builds a network port descriptor. The default is not range
 * checked here; Validate rejects anything outside [1, 65535].
 */
func NewPort(def int, description string) *Descriptor {
	return &Descriptor{Kind: Port, Default: def, Example: 8080, Description: description}
}

/**
 * NewPath builds a filesystem path descriptor.
 */
func NewPath(def string, description string) *Descriptor {
	return &Descriptor{Kind: Path, Default: def, Example: "/var/lib/sysconf", Description: description}
}

/**
 * NewStringList builds a list-of-strings descriptor.
 */
func NewStringList(def []string, description string) *Descriptor {
	return &Descriptor{Kind: StringList, Default: def, Description: description}
}

/**
 * NewEnum builds an enumerated string descriptor.
 * @param {[]string} allowed - Permitted members, must be non-empty
 * @returns {*Descriptor, error} Error when the member set is empty
 */
func NewEnum(def string, allowed []string, description string) (*Descriptor, error) {
	if len(allowed) == 0 {
		return nil, fmt.Errorf("enum option needs a non-empty allowed value set")
	}
	return &Descriptor{
		Kind:          Enum,
		Default:       def,
		Example:       allowed[0],
		Description:   description,
		AllowedValues: append([]string(nil), allowed...),
	}, nil
}

/**
 * NewPercentage builds a bounded integer descriptor over [0, 100].
 */
func NewPercentage(def int, description string) *Descriptor {
	return &Descriptor{Kind: Percentage, Default: def, Example: 50, Description: description, Min: 0, Max: 100}
}

/**
 * NewMemory builds a memory size descriptor ("512M", "2G").
 */
func NewMemory(def string, description string) *Descriptor {
	return &Descriptor{Kind: Memory, Default: def, Example: "2G", Description: description}
}

/**
 * NewSchedule builds a maintenance schedule descriptor: a fixed literal
 * (daily, weekly, ...) or a 5-field cron expression.
 */
func NewSchedule(def string, description string) *Descriptor {
	return &Descriptor{Kind: Schedule, Default: def, Example: "daily", Description: description}
}

/**
 * NewIntRange builds a bounded integer descriptor.
 * @param {int} min/max - Inclusive bounds, min must not exceed max
 * @returns {*Descriptor, error} Error on inverted bounds
 */
func NewIntRange(def, min, max int, description string) (*Descriptor, error) {
	if min > max {
		return nil, fmt.Errorf("intRange option has inverted bounds: min %d > max %d", min, max)
	}
	return &Descriptor{Kind: IntRange, Default: def, Description: description, Min: min, Max: max}, nil
}

/**
 * NewNetwork builds a CIDR network descriptor.
 */
func NewNetwork(def string, description string) *Descriptor {
	return &Descriptor{Kind: Network, Default: def, Example: "192.168.1.0/24", Description: description}
}

/**
 * NewSubmodule builds a nested option group descriptor.
 */
func NewSubmodule(elem map[string]*Descriptor, description string) *Descriptor {
	return &Descriptor{Kind: Submodule, Description: description, Elem: elem}
}

/**
 * InBounds is the pure bounds predicate shared by Percentage and IntRange
 * validation.
 */
func InBounds(value, min, max int) bool {
	return value >= min && value <= max
}

/**
 * Validate checks a candidate value against the descriptor.
 * @param {string} path - Dotted config path, used in the reported errors
 * @param {any} value - Candidate value from the composed tree
 * @returns {models.ValidationErrors} Empty on success; a Submodule
 *   accumulates the failures of all its children rather than stopping at
 *   the first
 */
func (d *Descriptor) Validate(path string, value any) models.ValidationErrors {
	switch d.Kind {
	case Bool:
		if _, ok := value.(bool); !ok {
			return typeError(path, "expected a boolean, got %T", value)
		}
	case Port:
		n, ok := asInt(value)
		if !ok {
			return typeError(path, "expected a port number, got %T", value)
		}
		if !InBounds(n, portMin, portMax) {
			return boundsError(path, "port %d outside [%d, %d]", n, portMin, portMax)
		}
	case Path:
		s, ok := value.(string)
		if !ok {
			return typeError(path, "expected a path string, got %T", value)
		}
		if s == "" {
			return typeError(path, "path must not be empty")
		}
	case StringList:
		if !isStringList(value) {
			return typeError(path, "expected a list of strings, got %T", value)
		}
	case Enum:
		s, ok := value.(string)
		if !ok {
			return typeError(path, "expected one of %v, got %T", d.AllowedValues, value)
		}
		if !contains(d.AllowedValues, s) {
			return boundsError(path, "%q not in allowed set %v", s, d.AllowedValues)
		}
	case Percentage, IntRange:
		n, ok := asInt(value)
		if !ok {
			return typeError(path, "expected an integer, got %T", value)
		}
		if !InBounds(n, d.Min, d.Max) {
			return boundsError(path, "%d outside [%d, %d]", n, d.Min, d.Max)
		}
	case Memory:
		s, ok := value.(string)
		if !ok {
			return typeError(path, "expected a memory size string, got %T", value)
		}
		if !values.IsMemoryString(s) {
			return typeError(path, "%q is not a memory size (digits with optional K/M/G/T suffix)", s)
		}
	case Schedule:
		s, ok := value.(string)
		if !ok {
			return typeError(path, "expected a schedule string, got %T", value)
		}
		if !values.IsScheduleString(s) {
			return typeError(path, "%q is not a schedule literal or 5-field cron expression", s)
		}
	case Network:
		s, ok := value.(string)
		if !ok {
			return typeError(path, "expected a network string, got %T", value)
		}
		if !values.IsNetworkString(s) {
			return typeError(path, "%q is not a CIDR network (a.b.c.d/len)", s)
		}
	case Submodule:
		tree, ok := value.(models.ConfigTree)
		if !ok {
			return typeError(path, "expected a nested settings group, got %T", value)
		}
		keys := make([]string, 0, len(d.Elem))
		for key := range d.Elem {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var errs models.ValidationErrors
		for _, key := range keys {
			nested, present := tree[key]
			if !present {
				continue
			}
			errs = append(errs, d.Elem[key].Validate(path+"."+key, nested)...)
		}
		return errs
	default:
		return typeError(path, "unknown option kind %q", d.Kind)
	}
	return nil
}

func typeError(path, format string, args ...any) models.ValidationErrors {
	return models.ValidationErrors{{
		Kind:    models.ErrType,
		Keys:    []string{path},
		Message: fmt.Sprintf(format, args...),
	}}
}

func boundsError(path, format string, args ...any) models.ValidationErrors {
	return models.ValidationErrors{{
		Kind:    models.ErrBounds,
		Keys:    []string{path},
		Message: fmt.Sprintf(format, args...),
	}}
}

// asInt accepts the integer representations a tree can carry: native ints
// from declarations and float64 from JSON decoding.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}

func isStringList(value any) bool {
	switch v := value.(type) {
	case []string:
		return true
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}

func contains(set []string, s string) bool {
	for _, member := range set {
		if member == s {
			return true
		}
	}
	return false
}
