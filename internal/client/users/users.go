// Package users keeps user accounts as documents of a branch.
//
// Каждое изменение учетной записи становится обычным коммитом, поэтому
// ветка пользователей синхронизируется pull/push как любые другие данные.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/client/repository"
	"github.com/iudanet/docsync/internal/crypto"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/query"
)

var (
	// ErrUserExists пользователь с таким email или id уже заведен
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound пользователя нет в ветке
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser пустое имя, email/id или пароль
	ErrInvalidUser = errors.New("invalid user")
	// ErrInvalidGrantType допустимы только password и client_credentials
	ErrInvalidGrantType = errors.New("invalid grant type")
	// ErrInvalidStatus неизвестный статус пользователя
	ErrInvalidStatus = errors.New("invalid user status")
)

// Status состояние учетной записи.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
	StatusBlocked  Status = "blocked"
)

// ParseStatus validates a status name
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(s)); st {
	case StatusInactive, StatusActive, StatusBlocked:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// GrantType способ входа пользователя.
type GrantType string

const (
	GrantPassword          GrantType = "password"
	GrantClientCredentials GrantType = "client_credentials"
)

// ParseGrantType validates a grant type name
func ParseGrantType(s string) (GrantType, error) {
	switch gt := GrantType(s); gt {
	case GrantPassword, GrantClientCredentials:
		return gt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGrantType, s)
	}
}

// Поля документа пользователя
const (
	FieldName      = "name"
	FieldEmailOrID = "email_or_id"
	FieldGrantType = "grant_type"
	FieldStatus    = "status"
	FieldHash      = "password_hash"
	FieldSalt      = "password_salt"
)

// publicFields поля, которые отдаются наружу без хеша и соли
var publicFields = []string{FieldName, FieldEmailOrID, FieldGrantType, FieldStatus}

// Manager заводит пользователей и меняет их статус и пароль в одной ветке.
type Manager struct {
	repo   repository.Repository
	logger *slog.Logger
	branch string
	// mu сериализует проверку существования и коммит нового пользователя
	mu sync.Mutex
}

// NewManager creates a user manager over branch
func NewManager(repo repository.Repository, branch string, logger *slog.Logger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger,
		branch: branch,
	}
}

// UserID returns the document id of a user.
// Id выводится из email/id, так что один пользователь в разных репликах попадает в один документ.
func UserID(emailOrID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("docsync:user:"+strings.ToLower(emailOrID))).String()
}

// GeneratePasswordOrSecret hashes a password or client secret with a fresh salt
func (m *Manager) GeneratePasswordOrSecret(password string) (crypto.PasswordHash, error) {
	if password == "" {
		return crypto.PasswordHash{}, fmt.Errorf("%w: password cannot be empty", ErrInvalidUser)
	}
	h, err := crypto.HashPassword(password)
	if err != nil {
		return crypto.PasswordHash{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return h, nil
}

// AddUser creates an inactive user. Returns ErrUserExists if emailOrID is taken.
func (m *Manager) AddUser(ctx context.Context, name, emailOrID, password, grantType, message string) (*models.Document, error) {
	if name == "" || emailOrID == "" {
		return nil, fmt.Errorf("%w: name and email or id are required", ErrInvalidUser)
	}
	grant, err := ParseGrantType(grantType)
	if err != nil {
		return nil, err
	}
	h, err := m.GeneratePasswordOrSecret(password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := UserID(emailOrID)
	_, err = m.repo.Get(ctx, m.branch, id)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrUserExists, emailOrID)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	doc := models.NewDocument(map[string]any{
		FieldName:      name,
		FieldEmailOrID: emailOrID,
		FieldGrantType: string(grant),
		FieldStatus:    string(StatusInactive),
		FieldHash:      h.Hash,
		FieldSalt:      h.Salt,
	})
	if err := doc.SetID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrValidation, err)
	}
	if message == "" {
		message = "add user " + emailOrID
	}

	saved, err := m.repo.Commit(ctx, m.branch, doc, message, "")
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	m.logger.Info("User added", "id", saved.ID, "user", emailOrID, "grant_type", grant)
	return saved, nil
}

// ChangeUserStatus sets the status of a user
func (m *Manager) ChangeUserStatus(ctx context.Context, emailOrID, status, message string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	if message == "" {
		message = fmt.Sprintf("set user %s %s", emailOrID, st)
	}
	if err := m.update(ctx, emailOrID, message, map[string]any{FieldStatus: string(st)}); err != nil {
		return err
	}
	m.logger.Info("User status changed", "user", emailOrID, "status", st)
	return nil
}

// ChangeUserPasswordOrSecret replaces the password hash and salt of a user
func (m *Manager) ChangeUserPasswordOrSecret(ctx context.Context, emailOrID, password, message string) error {
	h, err := m.GeneratePasswordOrSecret(password)
	if err != nil {
		return err
	}
	if message == "" {
		message = "change password of " + emailOrID
	}
	if err := m.update(ctx, emailOrID, message, map[string]any{FieldHash: h.Hash, FieldSalt: h.Salt}); err != nil {
		return err
	}
	m.logger.Info("User password changed", "user", emailOrID)
	return nil
}

// Verify checks a password against the stored hash. Only active users pass.
func (m *Manager) Verify(ctx context.Context, emailOrID, password string) (bool, error) {
	doc, err := m.user(ctx, emailOrID)
	if err != nil {
		return false, err
	}
	if st, _ := doc.Fields[FieldStatus].(string); Status(st) != StatusActive {
		return false, nil
	}
	stored := crypto.PasswordHash{}
	stored.Hash, _ = doc.Fields[FieldHash].(string)
	stored.Salt, _ = doc.Fields[FieldSalt].(string)
	ok, err := crypto.VerifyPassword(password, stored)
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	return ok, nil
}

// List returns users ordered by email or id, without password hashes
func (m *Manager) List(ctx context.Context) ([]*models.Document, error) {
	docs, err := m.repo.Search(ctx, m.branch, query.Filter{FieldEmailOrID: map[string]any{"$exists": true}}, publicFields, []query.SortField{{Field: FieldEmailOrID}}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return docs, nil
}

func (m *Manager) user(ctx context.Context, emailOrID string) (*models.Document, error) {
	if emailOrID == "" {
		return nil, fmt.Errorf("%w: email or id is required", ErrInvalidUser)
	}
	doc, err := m.repo.Get(ctx, m.branch, UserID(emailOrID))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, emailOrID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc, nil
}

// update меняет поля пользователя одним коммитом
func (m *Manager) update(ctx context.Context, emailOrID, message string, fields map[string]any) error {
	doc, err := m.user(ctx, emailOrID)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc.Fields[k] = v
	}
	if _, err := m.repo.Commit(ctx, m.branch, doc, message, ""); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
