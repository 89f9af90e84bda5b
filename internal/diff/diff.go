// Package diff computes and applies field-level change sets between document trees.
package diff

import (
	"fmt"
	"sort"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

// Compute возвращает изменения, переводящие base в current.
// Рекурсия идет только по вложенным map; массивы и скаляры сравниваются целиком.
func Compute(base, current map[string]any) models.Diff {
	var changes []models.Change
	walk(nil, base, current, &changes)
	SortChanges(changes)
	return models.Diff{Changes: changes}
}

func walk(prefix models.Path, base, current map[string]any, out *[]models.Change) {
	for key, oldValue := range base {
		path := child(prefix, key)
		newValue, ok := current[key]
		if !ok {
			*out = append(*out, models.Change{Path: path, Kind: models.ChangeRemoved, Old: Copy(oldValue)})
			continue
		}

		oldMap, oldIsMap := oldValue.(map[string]any)
		newMap, newIsMap := newValue.(map[string]any)
		if oldIsMap && newIsMap {
			walk(path, oldMap, newMap, out)
			continue
		}
		if !query.Equal(oldValue, newValue) {
			*out = append(*out, models.Change{Path: path, Kind: models.ChangeModified, Old: Copy(oldValue), New: Copy(newValue)})
		}
	}

	for key, newValue := range current {
		if _, ok := base[key]; ok {
			continue
		}
		*out = append(*out, models.Change{Path: child(prefix, key), Kind: models.ChangeAdded, New: Copy(newValue)})
	}
}

func child(prefix models.Path, key string) models.Path {
	path := make(models.Path, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = key
	return path
}

// SortChanges упорядочивает изменения по пути посегментно.
func SortChanges(changes []models.Change) {
	sort.SliceStable(changes, func(i, j int) bool {
		return ComparePaths(changes[i].Path, changes[j].Path) < 0
	})
}

// ComparePaths compares paths segment by segment; a prefix sorts first.
func ComparePaths(a, b models.Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Apply применяет изменения к дереву на месте.
func Apply(tree map[string]any, d models.Diff) error {
	for _, c := range d.Changes {
		if err := ApplyChange(tree, c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyChange applies a single change to the tree.
func ApplyChange(tree map[string]any, c models.Change) error {
	if len(c.Path) == 0 {
		return fmt.Errorf("change has empty path")
	}
	switch c.Kind {
	case models.ChangeRemoved:
		Delete(tree, c.Path)
	case models.ChangeAdded, models.ChangeModified:
		Set(tree, c.Path, Copy(c.New))
	default:
		return fmt.Errorf("unknown change kind %d at %s", int(c.Kind), c.Path)
	}
	return nil
}

// Set записывает значение по пути, создавая промежуточные map.
// Нескалярный промежуточный узел заменяется на map.
func Set(tree map[string]any, path models.Path, value any) {
	node := tree
	for _, seg := range path[:len(path)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[seg] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}

// Delete removes the value at path; missing intermediate nodes are ignored.
func Delete(tree map[string]any, path models.Path) {
	node := tree
	for _, seg := range path[:len(path)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		node = next
	}
	delete(node, path[len(path)-1])
}

// Get returns the value at path.
func Get(tree map[string]any, path models.Path) (any, bool) {
	return query.Lookup(tree, path)
}

// Copy делает глубокую копию значения дерева (map и срезы).
func Copy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CopyTree(val)
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = Copy(val[i])
		}
		return out
	default:
		return v
	}
}

// CopyTree returns a deep copy of a document tree.
func CopyTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		out[k] = Copy(v)
	}
	return out
}
