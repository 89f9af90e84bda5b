package api

// Change одно изменение поля в диффе
type Change struct {
	Old  any      `json:"old,omitempty"`
	New  any      `json:"new,omitempty"`
	Kind string   `json:"kind"` // added, removed или modified
	Path []string `json:"path"`
}

// Commit представляет коммит на проводе
type Commit struct {
	ID         string   `json:"id"`
	Message    string   `json:"message,omitempty"`
	AuthorID   string   `json:"author_id,omitempty"`
	Hash       string   `json:"hash"`
	ParentHash string   `json:"parent_hash,omitempty"`
	Source     string   `json:"source,omitempty"` // local или merge
	Changes    []Change `json:"changes"`
	Timestamp  int64    `json:"timestamp"`
}

// Permission права пользователя или группы
type Permission struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

// Document представляет документ в результатах поиска
type Document struct {
	Fields map[string]any        `json:"fields"`
	Users  map[string]Permission `json:"users,omitempty"`
	Groups map[string]Permission `json:"groups,omitempty"`
	ID     string                `json:"id"`
	Owner  string                `json:"owner,omitempty"`
}

// SortField ключ сортировки
type SortField struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

// PullRequest запрос коммитов удаленного объекта после Start (до End включительно)
type PullRequest struct {
	Owner    string `json:"owner"`
	Branch   string `json:"branch"`
	ObjectID string `json:"object_id"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// PullResponse коммиты удаленного объекта по порядку
type PullResponse struct {
	Commits []Commit `json:"commits"`
	Head    string   `json:"head"`
}

// PushRequest отправка локальных коммитов удаленному объекту
type PushRequest struct {
	Owner    string   `json:"owner"`
	Branch   string   `json:"branch"`
	ObjectID string   `json:"object_id"`
	Commits  []Commit `json:"commits"`
}

// PushResponse результат применения коммитов на удаленной стороне
type PushResponse struct {
	Head    string `json:"head"`
	Created bool   `json:"created"` // объект создан этим push
}

// SearchRequest запрос поиска в удаленной ветке
type SearchRequest struct {
	Query       map[string]any `json:"query,omitempty"`
	Owner       string         `json:"owner"`
	Branch      string         `json:"branch"`
	Reference   string         `json:"reference,omitempty"`
	Projections []string       `json:"projections,omitempty"`
	Sort        []SortField    `json:"sort,omitempty"`
	Offset      int            `json:"offset,omitempty"`
	Limit       int            `json:"limit,omitempty"`
}

// SearchResponse найденные документы
type SearchResponse struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
}

// CreateBranchRequest создание удаленной ветки
type CreateBranchRequest struct {
	Users  map[string]Permission `json:"users,omitempty"`
	Groups map[string]Permission `json:"groups,omitempty"`
	Owner  string                `json:"owner"`
	Branch string                `json:"branch"`
}

// CreateBranchResponse результат создания ветки
type CreateBranchResponse struct {
	Branch  string `json:"branch"`
	Created bool   `json:"created"` // false, если ветка уже существовала
}

// ChunkRequest загрузка одного куска файла
type ChunkRequest struct {
	Owner       string `json:"owner"`
	Branch      string `json:"branch"`
	FileID      string `json:"file_id"`
	Checksum    string `json:"checksum"` // xxhash64 куска, hex
	Data        []byte `json:"data"`
	ChunkNumber int    `json:"chunk_number"`
}

// ChunkResponse подтверждение куска
type ChunkResponse struct {
	FileID      string `json:"file_id"`
	ChunkNumber int    `json:"chunk_number"`
	Received    int    `json:"received"` // сколько кусков файла уже принято
}

// MergeChunksRequest сборка файла из принятых кусков
type MergeChunksRequest struct {
	Owner      string `json:"owner"`
	Branch     string `json:"branch"`
	FileID     string `json:"file_id"`
	Checksum   string `json:"checksum"` // blake2b-256 всего файла, hex
	ChunkCount int    `json:"chunk_count"`
}

// MergeChunksResponse результат сборки файла
type MergeChunksResponse struct {
	FileID string `json:"file_id"`
	Hash   string `json:"hash"`
	Size   int64  `json:"size"`
}
