package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/docsync/internal/crypto"
)

// ErrChainBroken возвращается, если коммит не продолжает цепочку хешей журнала
var ErrChainBroken = errors.New("commit chain broken")

// CommitSource происхождение коммита.
type CommitSource int

const (
	// SourceLocal коммит создан локальной мутацией документа
	SourceLocal CommitSource = iota + 1
	// SourceMerge коммит создан слиянием входящих изменений
	SourceMerge
)

// String returns the name of the commit source.
func (s CommitSource) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Commit запись журнала: diff плюс причинные метаданные, связанная в цепочку хешей.
type Commit struct {
	ID         string       `json:"id"`
	Message    string       `json:"message,omitempty"`
	AuthorID   string       `json:"author_id,omitempty"`
	Hash       string       `json:"hash"`
	ParentHash string       `json:"parent_hash,omitempty"`
	Diff       Diff         `json:"diff"`
	Timestamp  int64        `json:"timestamp"`
	Source     CommitSource `json:"source"`
}

// ComputeHash вычисляет хеш коммита из хеша родителя и канонического JSON диффа.
// encoding/json сортирует ключи map, поэтому представление детерминировано.
func ComputeHash(parentHash string, diff Diff) (string, error) {
	payload, err := json.Marshal(diff)
	if err != nil {
		return "", fmt.Errorf("failed to marshal diff: %w", err)
	}
	return crypto.ChainHash(parentHash, payload), nil
}

// NewCommit builds a commit chained to parentHash.
func NewCommit(id string, diff Diff, message, authorID string, timestamp int64, parentHash string, source CommitSource) (Commit, error) {
	hash, err := ComputeHash(parentHash, diff)
	if err != nil {
		return Commit{}, err
	}
	return Commit{
		ID:         id,
		Diff:       diff,
		Message:    message,
		Timestamp:  timestamp,
		AuthorID:   authorID,
		Hash:       hash,
		ParentHash: parentHash,
		Source:     source,
	}, nil
}

// VerifyHash reports whether the commit hash matches its parent hash and diff.
func (c Commit) VerifyHash() bool {
	hash, err := ComputeHash(c.ParentHash, c.Diff)
	if err != nil {
		return false
	}
	return hash == c.Hash
}

// CommitLog журнал коммитов документа, только добавление.
type CommitLog []Commit

// Add добавляет коммит в конец журнала.
// Коммит должен ссылаться на хеш последнего коммита и иметь корректный собственный хеш.
func (l *CommitLog) Add(c Commit) error {
	if c.ID == "" {
		return fmt.Errorf("%w: commit id is empty", ErrChainBroken)
	}
	if c.ParentHash != l.LastHash() {
		return fmt.Errorf("%w: parent %q does not match tail %q", ErrChainBroken, c.ParentHash, l.LastHash())
	}
	if !c.VerifyHash() {
		return fmt.Errorf("%w: hash mismatch for commit %s", ErrChainBroken, c.ID)
	}
	if l.Contains(c.ID) {
		return fmt.Errorf("%w: duplicate commit id %s", ErrChainBroken, c.ID)
	}
	*l = append(*l, c)
	return nil
}

// All returns a copy of all commits.
func (l CommitLog) All() []Commit {
	out := make([]Commit, len(l))
	copy(out, l)
	return out
}

// Filtered возвращает коммиты строго после start и до end включительно.
// Пустая граница считается открытой; неизвестный start трактуется как начало журнала,
// неизвестный end как конец.
func (l CommitLog) Filtered(start, end string) []Commit {
	from := 0
	if start != "" {
		if i := l.IndexOf(start); i >= 0 {
			from = i + 1
		}
	}
	to := len(l)
	if end != "" {
		if i := l.IndexOf(end); i >= 0 {
			to = i + 1
		}
	}
	if from >= to {
		return []Commit{}
	}
	out := make([]Commit, to-from)
	copy(out, l[from:to])
	return out
}

// Head returns the id of the last commit or empty string for an empty log.
func (l CommitLog) Head() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1].ID
}

// LastHash returns the chain hash of the last commit or empty string.
func (l CommitLog) LastHash() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1].Hash
}

// IndexOf returns the position of the commit with the given id, or -1.
func (l CommitLog) IndexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether the log has a commit with the given id.
func (l CommitLog) Contains(id string) bool {
	return l.IndexOf(id) >= 0
}

// Verify проверяет целостность всей цепочки.
func (l CommitLog) Verify() error {
	return VerifyChain(l, "")
}

// VerifyChain проверяет, что commits образуют цепочку, начинающуюся от parentHash.
func VerifyChain(commits []Commit, parentHash string) error {
	prev := parentHash
	for i, c := range commits {
		if c.ParentHash != prev {
			return fmt.Errorf("%w: commit %d (%s) has parent %q, expected %q", ErrChainBroken, i, c.ID, c.ParentHash, prev)
		}
		if !c.VerifyHash() {
			return fmt.Errorf("%w: commit %d (%s) hash mismatch", ErrChainBroken, i, c.ID)
		}
		prev = c.Hash
	}
	return nil
}

// FoldHash сворачивает диффы коммитов слева направо: h = hash(h, diff).
// Для корректного журнала результат равен LastHash.
func FoldHash(commits []Commit) (string, error) {
	hash := ""
	for _, c := range commits {
		next, err := ComputeHash(hash, c.Diff)
		if err != nil {
			return "", err
		}
		hash = next
	}
	return hash, nil
}
