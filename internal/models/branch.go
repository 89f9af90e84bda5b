package models

import "time"

// DefaultBranch имя ветки, создаваемой для владельца при инициализации
const DefaultBranch = "master"

// SearchBranchSuffix добавляется к имени ветки данных для ветки результатов поиска
const SearchBranchSuffix = "$search"

// BranchKind тип ветки.
type BranchKind int

const (
	BranchLocal BranchKind = iota + 1
	BranchRemoteTracking
	BranchSearch
)

// String returns the name of the branch kind.
func (k BranchKind) String() string {
	switch k {
	case BranchLocal:
		return "local"
	case BranchRemoteTracking:
		return "remote-tracking"
	case BranchSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Branch именованный указатель на коллекцию документов владельца.
type Branch struct {
	CreatedAt  time.Time  `json:"created_at"`
	Name       string     `json:"name"`
	Owner      string     `json:"owner"`
	Collection string     `json:"collection"`
	Kind       BranchKind `json:"kind"`
}

// CollectionName returns the document collection backing a branch of the owner.
func CollectionName(owner, branch string) string {
	return owner + "/" + branch
}

// SearchBranchName returns the name of the search branch paired with a data branch.
func SearchBranchName(branch string) string {
	return branch + SearchBranchSuffix
}
