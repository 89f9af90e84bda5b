// Package merge replays ordered diffs onto a document tree and reports field conflicts.
package merge

import (
	"sort"

	"github.com/iudanet/docsync/internal/diff"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

// Conflict поле, измененное и локально, и во входящем коммите, с разными значениями.
// Поле сохраняет локальное значение до явного повторного коммита.
type Conflict struct {
	Local    any         `json:"local,omitempty"`
	Incoming any         `json:"incoming,omitempty"`
	CommitID string      `json:"commit_id,omitempty"`
	Path     models.Path `json:"path"`
}

// Report результат слияния для решения вызывающей стороны. Не сохраняется.
type Report struct {
	Head      string     `json:"head,omitempty"`
	BaseHash  string     `json:"base_hash,omitempty"`
	Conflicts []Conflict `json:"conflicts"`
	Applied   []string   `json:"applied"`
}

// HasConflicts reports whether the merge left unresolved conflicts.
func (r Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Merge применяет диффы к base по порядку без локального расхождения.
// Merge(base, nil) возвращает копию base без конфликтов.
func Merge(base map[string]any, diffs []models.Diff) (map[string]any, []Conflict) {
	return MergeDivergent(base, diffs, nil)
}

// MergeDivergent применяет входящие диффы к base (текущему локальному состоянию),
// учитывая локальные диффы с момента общего предка.
func MergeDivergent(base map[string]any, diffs []models.Diff, local []models.Diff) (map[string]any, []Conflict) {
	m := newMerger(base, local)
	for _, d := range diffs {
		m.apply(d, "")
	}
	return m.tree, m.result()
}

// MergeCommits сливает входящие коммиты и заполняет Applied, Head и CommitID конфликтов.
// Applied содержит коммиты, не породившие ни одного конфликта.
func MergeCommits(base map[string]any, incoming, local []models.Commit) (map[string]any, Report) {
	localDiffs := make([]models.Diff, 0, len(local))
	for _, c := range local {
		localDiffs = append(localDiffs, c.Diff)
	}

	m := newMerger(base, localDiffs)
	report := Report{Applied: []string{}}
	for _, c := range incoming {
		if clean := m.apply(c.Diff, c.ID); clean {
			report.Applied = append(report.Applied, c.ID)
		}
		report.Head = c.ID
	}
	report.Conflicts = m.result()
	return m.tree, report
}

type merger struct {
	tree      map[string]any
	conflicts map[string]*Conflict
	touched   []models.Path
}

func newMerger(base map[string]any, local []models.Diff) *merger {
	tree := diff.CopyTree(base)
	if tree == nil {
		tree = make(map[string]any)
	}
	m := &merger{
		tree:      tree,
		conflicts: make(map[string]*Conflict),
	}
	for _, d := range local {
		m.touched = append(m.touched, d.Paths()...)
	}
	return m
}

func (m *merger) locallyTouched(path models.Path) bool {
	for _, p := range m.touched {
		if p.Overlaps(path) {
			return true
		}
	}
	return false
}

// apply применяет один дифф; false, если хотя бы одно изменение стало конфликтом
func (m *merger) apply(d models.Diff, commitID string) bool {
	clean := true
	for _, c := range d.Changes {
		if len(c.Path) == 0 {
			continue
		}
		current, exists := diff.Get(m.tree, c.Path)
		incoming, incomingExists := c.New, c.Kind != models.ChangeRemoved

		// значение уже совпадает: повторное применение ничего не меняет
		if exists == incomingExists && (!exists || query.Equal(current, incoming)) {
			continue
		}

		key := c.Path.Key()
		if existing, ok := m.conflicts[key]; ok {
			existing.Incoming = diff.Copy(incoming)
			existing.CommitID = commitID
			clean = false
			continue
		}

		if m.locallyTouched(c.Path) {
			var local any
			if exists {
				local = diff.Copy(current)
			}
			m.conflicts[key] = &Conflict{
				Path:     c.Path,
				Local:    local,
				Incoming: diff.Copy(incoming),
				CommitID: commitID,
			}
			clean = false
			continue
		}

		if err := diff.ApplyChange(m.tree, c); err != nil {
			// неизвестный тип изменения не применяется
			continue
		}
	}
	return clean
}

func (m *merger) result() []Conflict {
	out := make([]Conflict, 0, len(m.conflicts))
	for _, c := range m.conflicts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return diff.ComparePaths(out[i].Path, out[j].Path) < 0
	})
	return out
}
