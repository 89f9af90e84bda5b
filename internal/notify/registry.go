// Package notify fans out document change notifications to subscribers keyed by object id.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/iudanet/docsync/internal/models"
)

// Handler получает документ после успешного коммита.
type Handler func(ctx context.Context, doc *models.Document)

// Subscription handle подписки; передается в Deregister.
type Subscription struct {
	objectID string
	id       uint64
}

// Registry сопоставляет id объекта с набором подписчиков.
type Registry struct {
	logger *slog.Logger
	subs   map[string]map[uint64]Handler
	nextID atomic.Uint64
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		subs:   make(map[string]map[uint64]Handler),
	}
}

// Register подписывает handler на изменения объекта.
func (r *Registry) Register(objectID string, h Handler) Subscription {
	sub := Subscription{objectID: objectID, id: r.nextID.Add(1)}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[objectID]
	if !ok {
		set = make(map[uint64]Handler)
		r.subs[objectID] = set
	}
	set[sub.id] = h
	return sub
}

// Deregister удаляет подписку. Доставка, уже идущая другим подписчикам, не прерывается.
func (r *Registry) Deregister(sub Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[sub.objectID]
	if !ok {
		return
	}
	delete(set, sub.id)
	if len(set) == 0 {
		delete(r.subs, sub.objectID)
	}
}

// Count returns the number of subscribers of the object.
func (r *Registry) Count(objectID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[objectID])
}

// Notify доставляет документ текущим подписчикам объекта.
// Набор подписчиков копируется под блокировкой, обработчики вызываются без нее.
// Каждый обработчик получает свою копию: doc остается у вызывающего коммит.
func (r *Registry) Notify(ctx context.Context, doc *models.Document) {
	r.mu.RLock()
	handlers := make([]Handler, 0, len(r.subs[doc.ID]))
	for _, h := range r.subs[doc.ID] {
		handlers = append(handlers, h)
	}
	r.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	r.logger.Debug("Notifying subscribers", "object_id", doc.ID, "count", len(handlers))

	for _, h := range handlers {
		c, err := doc.Clone()
		if err != nil {
			r.logger.Warn("Failed to copy document for subscriber", "object_id", doc.ID, "error", err)
			continue
		}
		h(ctx, c)
	}
}
