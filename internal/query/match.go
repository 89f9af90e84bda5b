package query

import (
	"fmt"
	"strings"
)

// Match reports whether fields satisfy the filter.
func Match(fields map[string]any, f Filter) (bool, error) {
	for key, cond := range f {
		var (
			ok  bool
			err error
		)
		switch key {
		case "$and":
			ok, err = matchAll(fields, cond, true)
		case "$or":
			ok, err = matchAll(fields, cond, false)
		default:
			if strings.HasPrefix(key, "$") {
				return false, fmt.Errorf("%w: unknown top-level operator %s", ErrInvalidQuery, key)
			}
			ok, err = matchField(fields, SplitPath(key), cond)
		}
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchAll(fields map[string]any, cond any, all bool) (bool, error) {
	list, ok := cond.([]any)
	if !ok {
		if filters, ok := cond.([]Filter); ok {
			list = make([]any, len(filters))
			for i := range filters {
				list[i] = filters[i]
			}
		} else {
			return false, fmt.Errorf("%w: $and/$or expects a list", ErrInvalidQuery)
		}
	}

	for _, item := range list {
		sub, err := asFilter(item)
		if err != nil {
			return false, err
		}
		ok, err := Match(fields, sub)
		if err != nil {
			return false, err
		}
		if all && !ok {
			return false, nil
		}
		if !all && ok {
			return true, nil
		}
	}
	// пустой $and истинен, пустой $or ложен
	return all, nil
}

func asFilter(v any) (Filter, error) {
	switch f := v.(type) {
	case Filter:
		return f, nil
	case map[string]any:
		return Filter(f), nil
	default:
		return nil, fmt.Errorf("%w: expected filter object, got %T", ErrInvalidQuery, v)
	}
}

func matchField(fields map[string]any, path []string, cond any) (bool, error) {
	value, exists := Lookup(fields, path)

	ops, isOps := operators(cond)
	if !isOps {
		return exists && Equal(value, cond), nil
	}

	for op, arg := range ops {
		ok, err := applyOperator(op, value, exists, arg)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// operators возвращает map операторов, если все ключи условия начинаются с $
func operators(cond any) (map[string]any, bool) {
	var m map[string]any
	switch c := cond.(type) {
	case map[string]any:
		m = c
	case Filter:
		m = c
	default:
		return nil, false
	}
	if len(m) == 0 {
		return nil, false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return nil, false
		}
	}
	return m, true
}

func applyOperator(op string, value any, exists bool, arg any) (bool, error) {
	switch op {
	case "$eq":
		return exists && Equal(value, arg), nil
	case "$ne":
		return !exists || !Equal(value, arg), nil
	case "$gt", "$gte", "$lt", "$lte":
		if !exists {
			return false, nil
		}
		c, ok := Compare(value, arg)
		if !ok {
			return false, nil
		}
		switch op {
		case "$gt":
			return c > 0, nil
		case "$gte":
			return c >= 0, nil
		case "$lt":
			return c < 0, nil
		default:
			return c <= 0, nil
		}
	case "$in", "$nin":
		list, ok := arg.([]any)
		if !ok {
			return false, fmt.Errorf("%w: %s expects a list", ErrInvalidQuery, op)
		}
		found := false
		if exists {
			for _, item := range list {
				if Equal(value, item) {
					found = true
					break
				}
			}
		}
		if op == "$in" {
			return found, nil
		}
		return !found, nil
	case "$exists":
		want, ok := arg.(bool)
		if !ok {
			return false, fmt.Errorf("%w: $exists expects a bool", ErrInvalidQuery)
		}
		return exists == want, nil
	default:
		return false, fmt.Errorf("%w: unknown operator %s", ErrInvalidQuery, op)
	}
}
