// Package notify delivers user-visible messages. Delivery is one-way: a
// Notifier never reports failure back to the caller.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
)

type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// LogNotifier renders notifications as log lines. Destructive ones go out
// at error level.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(l zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: l.With().Str("component", "notify").Logger()}
}

func (n *LogNotifier) Notify(_ context.Context, msg models.Notification) {
	ev := n.log.Info()
	if msg.Variant == models.VariantDestructive {
		ev = n.log.Error()
	}
	ev.Str("title", msg.Title).Msg(msg.Description)
}

// Recorder keeps every notification in order.
type Recorder struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *Recorder) Notify(_ context.Context, n models.Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

func (r *Recorder) All() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.sent...)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return models.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// Discard drops everything.
type Discard struct{}

func (Discard) Notify(context.Context, models.Notification) {}
