package models

// Head последние синхронизированные коммиты для одной удаленной координаты.
//   - Pull: последний id входящего коммита, уже примененный локально
//   - Push: последний id локального коммита, подтвержденный удаленной стороной
//   - Base: id локального коммита, которым завершилось последнее слияние
type Head struct {
	Pull string `json:"pull,omitempty"`
	Push string `json:"push,omitempty"`
	Base string `json:"base,omitempty"`
}

// PullState таблица pull/push по ключу координаты.
type PullState map[string]Head

// GetPullInformation returns the pull head for the coordinate.
func (p PullState) GetPullInformation(c Coordinate) string {
	return p[c.Key()].Pull
}

// GetPushInformation returns the push head for the coordinate.
func (p PullState) GetPushInformation(c Coordinate) string {
	return p[c.Key()].Push
}

// GetBase returns the base commit id recorded for the coordinate.
func (p PullState) GetBase(c Coordinate) string {
	return p[c.Key()].Base
}

// UpdatePull sets the pull head.
// Монотонность продвижения обеспечивает вызывающий код (Repository), который знает порядок коммитов.
func (p PullState) UpdatePull(c Coordinate, commitID string) {
	h := p[c.Key()]
	h.Pull = commitID
	p[c.Key()] = h
}

// UpdatePush sets the push head.
func (p PullState) UpdatePush(c Coordinate, commitID string) {
	h := p[c.Key()]
	h.Push = commitID
	p[c.Key()] = h
}

// UpdateBase records the local commit id at the last merge point.
func (p PullState) UpdateBase(c Coordinate, commitID string) {
	h := p[c.Key()]
	h.Base = commitID
	p[c.Key()] = h
}
