package search

import (
	"fmt"
	"strings"
)

// DefaultIDKey ключ строки результата, по которому строки сопоставляются
const DefaultIDKey = "id"

// MergeSearchResults сливает draft в base по ключу "id".
func MergeSearchResults(base, draft []map[string]any) []map[string]any {
	return MergeSearchResultsForIDs(base, draft, []string{DefaultIDKey})
}

// MergeSearchResultsForIDs сливает draft в base по составному ключу idKeys.
// Строка draft заменяет строку base с тем же ключом на ее месте, остальные строки draft
// добавляются в конец в своем порядке. Строки без ключа всегда добавляются.
func MergeSearchResultsForIDs(base, draft []map[string]any, idKeys []string) []map[string]any {
	out := make([]map[string]any, len(base), len(base)+len(draft))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, row := range out {
		if key, ok := rowKey(row, idKeys); ok {
			index[key] = i
		}
	}

	for _, row := range draft {
		key, ok := rowKey(row, idKeys)
		if !ok {
			out = append(out, row)
			continue
		}
		if i, found := index[key]; found {
			out[i] = row
			continue
		}
		index[key] = len(out)
		out = append(out, row)
	}
	return out
}

func rowKey(row map[string]any, idKeys []string) (string, bool) {
	if len(idKeys) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(idKeys))
	for _, k := range idKeys {
		v, ok := row[k]
		if !ok || v == nil {
			return "", false
		}
		parts = append(parts, fmt.Sprintf("%T:%v", v, v))
	}
	return strings.Join(parts, "\x00"), true
}
