package models

// AccessLevel уровень доступа, запрашиваемый у ACL.
type AccessLevel int

const (
	AccessRead AccessLevel = iota + 1
	AccessWrite
)

// String returns the wire name of the access level.
func (a AccessLevel) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Permission права пользователя или группы на объект.
type Permission struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

// Allows reports whether the permission grants the requested access.
// Write access implies read access.
func (p Permission) Allows(level AccessLevel) bool {
	switch level {
	case AccessRead:
		return p.Read || p.Write
	case AccessWrite:
		return p.Write
	default:
		return false
	}
}

// Users maps user id to its permission on an object.
type Users map[string]Permission

// Groups maps group name to its permission on an object.
type Groups map[string]Permission

// UserGroups maps user id to the groups the user belongs to.
type UserGroups map[string][]string
