// Package branches manages named branches of the current owner.
package branches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/validation"
)

var (
	// ErrBranchExists у владельца уже есть ветка с таким именем
	ErrBranchExists = storage.ErrBranchExists
	// ErrBranchNotFound ветка не найдена
	ErrBranchNotFound = storage.ErrBranchNotFound
	// ErrInvalidBranchName имя ветки не проходит валидацию
	ErrInvalidBranchName = errors.New("invalid branch name")
	// ErrBranchCheckedOut нельзя удалить текущую ветку
	ErrBranchCheckedOut = errors.New("branch is checked out")
)

//go:generate moq -out taskcanceller_mock.go . TaskCanceller

// TaskCanceller отменяет задачи синхронизации ветки перед ее удалением.
type TaskCanceller interface {
	CancelBranch(ctx context.Context, branch string) (int, error)
}

// Manager CRUD над ветками владельца и текущая ветка.
type Manager struct {
	branches  storage.BranchStorage
	documents storage.DocumentStore
	pulls     storage.PullRequestStorage
	metadata  storage.MetadataStorage
	canceller TaskCanceller
	logger    *slog.Logger
	owner     string
	current   string
	mu        sync.RWMutex
}

// NewManager creates a branch manager for owner
// canceller может быть nil, если движок синхронизации не запущен.
func NewManager(
	owner string,
	branches storage.BranchStorage,
	documents storage.DocumentStore,
	pulls storage.PullRequestStorage,
	metadata storage.MetadataStorage,
	canceller TaskCanceller,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		branches:  branches,
		documents: documents,
		pulls:     pulls,
		metadata:  metadata,
		canceller: canceller,
		logger:    logger,
		owner:     owner,
		current:   models.DefaultBranch,
	}
}

// SetCanceller подключает движок синхронизации после его создания.
func (m *Manager) SetCanceller(c TaskCanceller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.canceller = c
}

// Load restores the checked out branch saved by a previous Checkout
func (m *Manager) Load(ctx context.Context) error {
	name, err := m.metadata.GetCurrentBranch(ctx, m.owner)
	if err != nil {
		return fmt.Errorf("failed to load current branch: %w", err)
	}
	if name == "" {
		return nil
	}

	m.mu.Lock()
	m.current = name
	m.mu.Unlock()
	return nil
}

// Current returns the name of the checked out branch
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Checkout makes an existing branch current
func (m *Manager) Checkout(ctx context.Context, name string) (*models.Branch, error) {
	branch, err := m.branches.GetBranch(ctx, m.owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to checkout %s: %w", name, err)
	}

	if err := m.metadata.SaveCurrentBranch(ctx, m.owner, name); err != nil {
		return nil, fmt.Errorf("failed to save current branch: %w", err)
	}

	m.mu.Lock()
	m.current = name
	m.mu.Unlock()

	m.logger.Info("Branch checked out", "branch", name)
	return branch, nil
}

// Add creates a local branch
func (m *Manager) Add(ctx context.Context, name string) (*models.Branch, error) {
	return m.AddWithKind(ctx, name, models.BranchLocal)
}

// AddWithKind creates a branch of the given kind with an empty collection
// Коллекция новой ветки пуста, поэтому журналы коммитов и таблицы pull/push начинаются с нуля.
func (m *Manager) AddWithKind(ctx context.Context, name string, kind models.BranchKind) (*models.Branch, error) {
	if err := validation.ValidateBranchName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBranchName, err)
	}

	branch := &models.Branch{
		CreatedAt:  time.Now().UTC(),
		Name:       name,
		Owner:      m.owner,
		Collection: models.CollectionName(m.owner, name),
		Kind:       kind,
	}

	// Коллекцию не трогаем: Delete очищает ее до удаления записи ветки,
	// а отказ на существующем имени не должен менять ее документы
	if err := m.branches.CreateBranch(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to create branch %s: %w", name, err)
	}

	m.logger.Info("Branch created", "branch", name, "kind", kind.String())
	return branch, nil
}

// SearchBranch returns the search branch paired with a data branch, creating it on first use
func (m *Manager) SearchBranch(ctx context.Context, name string) (*models.Branch, error) {
	if _, err := m.branches.GetBranch(ctx, m.owner, name); err != nil {
		return nil, fmt.Errorf("failed to resolve data branch %s: %w", name, err)
	}

	searchName := models.SearchBranchName(name)
	branch, err := m.branches.GetBranch(ctx, m.owner, searchName)
	if err == nil {
		return branch, nil
	}
	if !errors.Is(err, storage.ErrBranchNotFound) {
		return nil, fmt.Errorf("failed to get search branch: %w", err)
	}

	branch, err = m.AddWithKind(ctx, searchName, models.BranchSearch)
	if errors.Is(err, storage.ErrBranchExists) {
		// параллельное создание
		return m.branches.GetBranch(ctx, m.owner, searchName)
	}
	return branch, err
}

// Delete removes a branch, its documents, pull requests and outstanding sync tasks
func (m *Manager) Delete(ctx context.Context, name string) error {
	if name == m.Current() {
		return fmt.Errorf("%w: %s", ErrBranchCheckedOut, name)
	}

	branch, err := m.branches.GetBranch(ctx, m.owner, name)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	m.mu.RLock()
	canceller := m.canceller
	m.mu.RUnlock()

	// Сначала отменяем задачи, чтобы ответы не применились к удаляемой ветке
	if canceller != nil {
		cancelled, err := canceller.CancelBranch(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to cancel sync tasks: %w", err)
		}
		if cancelled > 0 {
			m.logger.Info("Sync tasks cancelled", "branch", name, "count", cancelled)
		}
	}

	if err := m.documents.DropCollection(ctx, branch.Collection); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	if err := m.pulls.DeletePullRequests(ctx, name); err != nil {
		return fmt.Errorf("failed to delete pull requests: %w", err)
	}
	if err := m.branches.DeleteBranch(ctx, m.owner, name); err != nil {
		return fmt.Errorf("failed to delete branch record: %w", err)
	}

	m.logger.Info("Branch deleted", "branch", name)

	// Ветка поиска живет и умирает вместе с веткой данных
	if branch.Kind != models.BranchSearch {
		err := m.Delete(ctx, models.SearchBranchName(name))
		if err != nil && !errors.Is(err, storage.ErrBranchNotFound) {
			return err
		}
	}
	return nil
}

// List returns all branches of the owner
func (m *Manager) List(ctx context.Context) ([]*models.Branch, error) {
	list, err := m.branches.ListBranches(ctx, m.owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return list, nil
}
