package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/docsync/internal/models"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistry_Notify(t *testing.T) {
	r := newTestRegistry()
	doc := &models.Document{ID: "doc-1"}

	var got []string
	r.Register("doc-1", func(_ context.Context, d *models.Document) { got = append(got, "a:"+d.ID) })
	r.Register("doc-2", func(_ context.Context, d *models.Document) { got = append(got, "b:"+d.ID) })

	r.Notify(context.Background(), doc)
	assert.Equal(t, []string{"a:doc-1"}, got)
}

func TestRegistry_NotifyGivesEachHandlerACopy(t *testing.T) {
	r := newTestRegistry()
	doc := models.NewDocument(map[string]any{"title": "draft"})
	doc.ID = "doc-1"

	var seen []any
	r.Register("doc-1", func(_ context.Context, d *models.Document) {
		seen = append(seen, d.Fields["title"])
		d.Fields["title"] = "changed"
	})
	r.Register("doc-1", func(_ context.Context, d *models.Document) {
		seen = append(seen, d.Fields["title"])
		d.Fields["title"] = "changed"
	})

	r.Notify(context.Background(), doc)
	assert.Equal(t, []any{"draft", "draft"}, seen)
	assert.Equal(t, "draft", doc.Fields["title"])
}

func TestRegistry_Deregister(t *testing.T) {
	r := newTestRegistry()
	calls := 0
	sub := r.Register("doc", func(context.Context, *models.Document) { calls++ })
	r.Register("doc", func(context.Context, *models.Document) { calls++ })
	assert.Equal(t, 2, r.Count("doc"))

	r.Deregister(sub)
	r.Deregister(sub)
	assert.Equal(t, 1, r.Count("doc"))

	r.Notify(context.Background(), &models.Document{ID: "doc"})
	assert.Equal(t, 1, calls)
}

func TestRegistry_DeregisterDuringDelivery(t *testing.T) {
	r := newTestRegistry()
	var second Subscription
	delivered := 0

	r.Register("doc", func(context.Context, *models.Document) {
		delivered++
		r.Deregister(second)
	})
	second = r.Register("doc", func(context.Context, *models.Document) { delivered++ })

	// снимок подписчиков сделан до доставки, поэтому оба обработчика вызываются
	r.Notify(context.Background(), &models.Document{ID: "doc"})
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 1, r.Count("doc"))
}
