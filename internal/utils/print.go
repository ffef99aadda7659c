package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/iancoleman/orderedmap"
)

/**
 * Convert a struct into an ordered map keyed by its json tags
 * @param {interface{}} v - Struct value with json tags
 * @returns {*orderedmap.OrderedMap, error} Map preserving field order
 * @description
 * - Round-trips through JSON so the display order matches the struct
 *   declaration order
 */
func StructToOrderedMap(v interface{}) (*orderedmap.OrderedMap, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal row failed: %w", err)
	}
	row := orderedmap.New()
	if err := json.Unmarshal(data, row); err != nil {
		return nil, fmt.Errorf("unmarshal row failed: %w", err)
	}
	return row, nil
}

/**
 * Print rows as an aligned table
 * @param {[]*orderedmap.OrderedMap} rows - Rows sharing one key set
 * @description
 * - Header derives from the first row's keys, upper-cased
 * - Values print with %v; lists join with commas
 */
func PrintFormat(rows []*orderedmap.OrderedMap) {
	if len(rows) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	keys := rows[0].Keys()

	header := make([]string, len(keys))
	for i, key := range keys {
		header[i] = strings.ToUpper(key)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, row := range rows {
		cells := make([]string, len(keys))
		for i, key := range keys {
			value, _ := row.Get(key)
			cells[i] = formatCell(value)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func formatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ",")
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
