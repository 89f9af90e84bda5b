package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrIDImmutable возвращается при попытке сменить уже назначенный ID документа
var ErrIDImmutable = errors.New("document id is immutable once assigned")

// Document представляет структурированный документ, хранимый в ветке.
// Содержимое (Fields) не имеет схемы: diff/merge работают только с путями и значениями.
type Document struct {
	Fields map[string]any `json:"fields"`
	ID     string         `json:"id,omitempty"`
	Meta   Meta           `json:"$meta"`
}

// Meta блок метаданных документа: права доступа, журнал коммитов и состояние pull/push.
type Meta struct {
	Users   Users     `json:"users,omitempty"`
	Groups  Groups    `json:"groups,omitempty"`
	Pulls   PullState `json:"pulls,omitempty"`
	Owner   string    `json:"owner,omitempty"`
	Commits CommitLog `json:"commits"`
}

// NewDocument creates an uninitialized document with the given fields.
func NewDocument(fields map[string]any) *Document {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Document{Fields: fields}
}

// Init назначает документу новый UUID, если он ещё не инициализирован.
func (d *Document) Init() {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Fields == nil {
		d.Fields = make(map[string]any)
	}
}

// IsInitialized reports whether the document already has an id.
func (d *Document) IsInitialized() bool {
	return d.ID != ""
}

// GetID returns the document id.
func (d *Document) GetID() string {
	return d.ID
}

// SetID задаёт ID. Повторная установка того же значения допустима,
// смена существующего ID запрещена.
func (d *Document) SetID(id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	if d.ID != "" && d.ID != id {
		return ErrIDImmutable
	}
	d.ID = id
	return nil
}

// GetCommits returns the commit log of the document.
func (d *Document) GetCommits() CommitLog {
	return d.Meta.Commits
}

// GetPulls returns the pull/push state table of the document.
func (d *Document) GetPulls() PullState {
	if d.Meta.Pulls == nil {
		d.Meta.Pulls = make(PullState)
	}
	return d.Meta.Pulls
}

// GetUsers returns users with access to the document.
func (d *Document) GetUsers() Users {
	return d.Meta.Users
}

// GetGroups returns groups with access to the document.
func (d *Document) GetGroups() Groups {
	return d.Meta.Groups
}

// Clone создаёт глубокую копию документа через JSON.
// Значения полей после клонирования нормализованы (числа -> float64).
func (d *Document) Clone() (*Document, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var clone Document
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	if clone.Fields == nil {
		clone.Fields = make(map[string]any)
	}
	return &clone, nil
}
