package diff

import (
	"github.com/iudanet/docsync/internal/models"
)

// Зарезервированные ключи снимка для прав доступа. Поля документа не могут начинаться с $.
const (
	UsersKey  = "$users"
	GroupsKey = "$groups"
)

// Snapshot возвращает сравниваемое дерево документа: поля плюс права доступа.
// Права хранятся как вложенные map, поэтому конфликт фиксируется на уровне
// отдельного пользователя или группы.
func Snapshot(doc *models.Document) map[string]any {
	tree := CopyTree(doc.Fields)
	if tree == nil {
		tree = make(map[string]any)
	}
	if len(doc.Meta.Users) > 0 {
		tree[UsersKey] = permissionsTree(doc.Meta.Users)
	}
	if len(doc.Meta.Groups) > 0 {
		tree[GroupsKey] = permissionsTree(doc.Meta.Groups)
	}
	return tree
}

// Restore записывает дерево обратно в документ.
func Restore(doc *models.Document, tree map[string]any) {
	fields := make(map[string]any, len(tree))
	var users, groups map[string]models.Permission
	for k, v := range tree {
		switch k {
		case UsersKey:
			users = permissionsFromTree(v)
		case GroupsKey:
			groups = permissionsFromTree(v)
		default:
			fields[k] = Copy(v)
		}
	}
	doc.Fields = fields
	doc.Meta.Users = users
	doc.Meta.Groups = groups
}

func permissionsTree[M ~map[string]models.Permission](perms M) map[string]any {
	out := make(map[string]any, len(perms))
	for name, p := range perms {
		out[name] = map[string]any{"read": p.Read, "write": p.Write}
	}
	return out
}

func permissionsFromTree(v any) map[string]models.Permission {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[string]models.Permission, len(m))
	for name, raw := range m {
		entry, _ := raw.(map[string]any)
		read, _ := entry["read"].(bool)
		write, _ := entry["write"].(bool)
		out[name] = models.Permission{Read: read, Write: write}
	}
	return out
}
