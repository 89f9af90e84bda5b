// Package query evaluates document queries: filter, projection, sort and pagination
// over schema-less field maps.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidQuery возвращается при неизвестном операторе или неверной форме фильтра
var ErrInvalidQuery = errors.New("invalid query")

// Filter фильтр в стиле Mongo: {"field": value} или {"field": {"$gt": 1}},
// а также {"$and": [...]}, {"$or": [...]}. Вложенные поля адресуются через точку.
type Filter map[string]any

// SortField ключ сортировки.
type SortField struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

// Query полный запрос к коллекции.
type Query struct {
	Filter      Filter      `json:"filter,omitempty"`
	Projections []string    `json:"projections,omitempty"`
	Sort        []SortField `json:"sort,omitempty"`
	Offset      int         `json:"offset,omitempty"`
	Limit       int         `json:"limit,omitempty"`
}

// Validate checks the filter operators and pagination bounds.
func (q Query) Validate() error {
	if q.Offset < 0 || q.Limit < 0 {
		return fmt.Errorf("%w: negative offset or limit", ErrInvalidQuery)
	}
	_, err := Match(map[string]any{}, q.Filter)
	return err
}

// Run фильтрует, сортирует и постранично отбирает элементы.
// fields возвращает дерево полей элемента; проекция не применяется.
func Run[T any](items []T, fields func(T) map[string]any, q Query) ([]T, error) {
	if q.Offset < 0 || q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative offset or limit", ErrInvalidQuery)
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := Match(fields(item), q.Filter)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}

	if len(q.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return Less(fields(matched[i]), fields(matched[j]), q.Sort)
		})
	}

	lo, hi := Page(len(matched), q.Offset, q.Limit)
	return matched[lo:hi], nil
}

// Page returns slice bounds for offset/limit; limit 0 means no limit.
func Page(n, offset, limit int) (int, int) {
	if offset > n {
		offset = n
	}
	hi := n
	if limit > 0 && offset+limit < n {
		hi = offset + limit
	}
	return offset, hi
}

// Less сравнивает два документа по ключам сортировки.
// Отсутствующие значения идут перед присутствующими.
func Less(a, b map[string]any, keys []SortField) bool {
	for _, k := range keys {
		path := SplitPath(k.Field)
		va, oka := Lookup(a, path)
		vb, okb := Lookup(b, path)

		var c int
		switch {
		case !oka && !okb:
			c = 0
		case !oka:
			c = -1
		case !okb:
			c = 1
		default:
			c = compareForSort(va, vb)
		}
		if c == 0 {
			continue
		}
		if k.Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}

// Project returns a tree holding only the projected paths.
// Пустой список проекций возвращает исходное дерево.
func Project(fields map[string]any, projections []string) map[string]any {
	if len(projections) == 0 {
		return fields
	}
	out := make(map[string]any)
	for _, p := range projections {
		path := SplitPath(p)
		v, ok := Lookup(fields, path)
		if !ok {
			continue
		}
		node := out
		for _, seg := range path[:len(path)-1] {
			next, ok := node[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				node[seg] = next
			}
			node = next
		}
		node[path[len(path)-1]] = v
	}
	return out
}

// SplitPath splits a dotted field path.
func SplitPath(field string) []string {
	return strings.Split(field, ".")
}

// Lookup returns the value at path in a nested map tree.
func Lookup(fields map[string]any, path []string) (any, bool) {
	var cur any = fields
	for _, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
