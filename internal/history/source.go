package history

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Source supplies past draws, oldest first, plus how many stored entries
// were unusable.
type Source interface {
	Name() string
	Draws(ctx context.Context) ([][]int, int, error)
}

// FileSource reads a JSON draws document from disk.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return "file:" + f.Path }

func (f FileSource) Draws(ctx context.Context) ([][]int, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("history: read %s: %w", f.Path, err)
	}
	return ParseDraws(data)
}

// Load builds the snapshot from src. It never fails: an unreachable or
// malformed source yields an empty degraded snapshot carrying the reason.
func Load(ctx context.Context, src Source, log logrus.FieldLogger) Snapshot {
	log = log.WithField("source", src.Name())

	draws, skipped, err := src.Draws(ctx)
	if err != nil {
		log.WithError(err).Warn("historical draws unavailable, generating without history")
		snap := Empty(StatusDegraded, "historical data unavailable: "+err.Error())
		snap.Source = src.Name()
		snap.LoadedAt = time.Now()
		return snap
	}

	snap := Build(draws)
	snap.Skipped = skipped
	snap.Source = src.Name()
	snap.LoadedAt = time.Now()
	if len(draws) == 0 {
		snap.Status = StatusDegraded
		snap.Warning = "no usable historical draws"
	} else if skipped > 0 {
		snap.Warning = fmt.Sprintf("%d malformed draws ignored", skipped)
	}

	log.WithFields(logrus.Fields{
		"draws":   snap.Draws,
		"skipped": skipped,
		"status":  snap.Status,
	}).Info("historical draws loaded")
	return snap
}

// Holder hands out the session snapshot. It starts empty and accepts exactly
// one loaded snapshot; later ones are ignored.
type Holder struct {
	mu   sync.RWMutex
	snap Snapshot
	set  bool
}

func NewHolder() *Holder {
	return &Holder{snap: Empty(StatusPending, "historical data still loading")}
}

func (h *Holder) Get() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Set stores snap if no snapshot was stored yet and reports whether it did.
func (h *Holder) Set(snap Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.set {
		return false
	}
	h.snap = snap
	h.set = true
	return true
}

// Start loads src in the background within timeout and stores the result in
// h. The returned channel is closed once the snapshot is set.
func Start(ctx context.Context, src Source, h *Holder, timeout time.Duration, log logrus.FieldLogger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		loadCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		h.Set(Load(loadCtx, src, log))
	}()
	return done
}
