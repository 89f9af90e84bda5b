// Package acl evaluates document access for users and groups.
package acl

import (
	"sync"

	"github.com/iudanet/docsync/internal/models"
)

// CheckAccess проверяет доступ requester к объекту.
// Владелец проходит всегда; иначе нужен подходящий Permission у пользователя
// или у одной из его групп. Функция чистая и безопасна для конкурентного вызова.
func CheckAccess(owner string, users models.Users, groups models.Groups, requester string, requesterGroups []string, level models.AccessLevel) bool {
	if requester != "" && requester == owner {
		return true
	}
	if requester == "" {
		return false
	}
	if p, ok := users[requester]; ok && p.Allows(level) {
		return true
	}
	for _, g := range requesterGroups {
		if p, ok := groups[g]; ok && p.Allows(level) {
			return true
		}
	}
	return false
}

// Checker проверяет доступ к документам с учетом членства в группах.
type Checker struct {
	memberships models.UserGroups
	mu          sync.RWMutex
}

// NewChecker creates a checker with the given group memberships.
func NewChecker(memberships models.UserGroups) *Checker {
	if memberships == nil {
		memberships = make(models.UserGroups)
	}
	return &Checker{memberships: memberships}
}

// CanAccess checks access of requester to the document.
// Документ без владельца принадлежит тому, кто его создает.
func (c *Checker) CanAccess(doc *models.Document, requester string, level models.AccessLevel) bool {
	owner := doc.Meta.Owner
	if owner == "" {
		owner = requester
	}
	return CheckAccess(owner, doc.Meta.Users, doc.Meta.Groups, requester, c.GroupsOf(requester), level)
}

// GroupsOf returns the groups of the user.
func (c *Checker) GroupsOf(user string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	groups := c.memberships[user]
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}

// AddUserToGroup добавляет пользователя в группу; повторное добавление ничего не меняет.
func (c *Checker) AddUserToGroup(user, group string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, g := range c.memberships[user] {
		if g == group {
			return
		}
	}
	c.memberships[user] = append(c.memberships[user], group)
}

// AssignUserToObject выдает пользователю права на документ.
// Изменение попадает в следующий коммит как изменение пути $users.
func AssignUserToObject(doc *models.Document, user string, perm models.Permission) {
	if doc.Meta.Users == nil {
		doc.Meta.Users = make(models.Users)
	}
	doc.Meta.Users[user] = perm
}

// AssignGroupToObject выдает группе права на документ.
func AssignGroupToObject(doc *models.Document, group string, perm models.Permission) {
	if doc.Meta.Groups == nil {
		doc.Meta.Groups = make(models.Groups)
	}
	doc.Meta.Groups[group] = perm
}
