package models

import (
	"strings"
)

// ChangeKind тип изменения поля.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeRemoved
	ChangeModified
)

// String returns a short name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Path адрес поля внутри документа, по сегментам.
type Path []string

// String returns the dotted form of the path, used for display and conflict reports.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Key returns an unambiguous key of the path (JSON pointer escaping).
func (p Path) Key() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		b.WriteString(seg)
	}
	return b.String()
}

// Overlaps reports whether one path is a prefix of the other (or they are equal).
func (p Path) Overlaps(other Path) bool {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Change одно изменение поля: старое и новое значения достаточны
// для применения изменения и для проверки конфликта.
type Change struct {
	Old  any        `json:"old,omitempty"`
	New  any        `json:"new,omitempty"`
	Path Path       `json:"path"`
	Kind ChangeKind `json:"kind"`
}

// Diff набор изменений между двумя снимками документа, отсортирован по Path.Key().
type Diff struct {
	Changes []Change `json:"changes"`
}

// DidChange reports whether the diff has any change.
func (d Diff) DidChange() bool {
	return len(d.Changes) > 0
}

// Paths returns changed paths in diff order.
func (d Diff) Paths() []Path {
	paths := make([]Path, 0, len(d.Changes))
	for _, c := range d.Changes {
		paths = append(paths, c.Path)
	}
	return paths
}
