package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/contaflow/backoffice/backup"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/types/business"
)

// DebounceDelay is how long a draft must stay quiet before its remote
// snapshot is written. Every new change resets the clock.
const DebounceDelay = 1200 * time.Millisecond

// ErrNoBackup is returned by Recover when neither a local backup nor a
// remote snapshot exists for the draft.
var ErrNoBackup = errors.New("no recoverable draft state")

// AutosaveGuard shields the wizard from losing work. Every mutation is
// backed up locally at once and snapshotted remotely after a debounce
// window; remote failures degrade to a warning, never to a blocked wizard.
type AutosaveGuard struct {
	queries db.Querier
	store   *backup.Store
	logger  *zap.Logger
	delay   time.Duration

	// notify reports the outcome of a debounced remote save back to the
	// draft owner, which records it as a non-blocking warning.
	notify func(draftID uuid.UUID, saveErr error)

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// NewAutosaveGuard creates a new autosave guard
func NewAutosaveGuard(queries db.Querier, store *backup.Store) *AutosaveGuard {
	return &AutosaveGuard{
		queries: queries,
		store:   store,
		logger:  logger.Log,
		delay:   DebounceDelay,
		timers:  make(map[uuid.UUID]*time.Timer),
	}
}

// SetNotify registers the callback invoked with the result of every
// debounced remote save. Must be set before the first DraftChanged call.
func (g *AutosaveGuard) SetNotify(notify func(draftID uuid.UUID, saveErr error)) {
	g.notify = notify
}

// DraftChanged records a draft mutation: the local backup is written
// immediately, and a remote snapshot is scheduled after the debounce delay,
// cancelling any save already pending for this draft.
func (g *AutosaveGuard) DraftChanged(ctx context.Context, draft *business.ProposalDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	if err := g.store.Save(ctx, draft.ID, draft.Step.String(), payload); err != nil {
		// Local backup failure is logged but never blocks the wizard.
		g.logger.Error("Local draft backup failed",
			zap.String("draft_id", draft.ID.String()),
			zap.Error(err))
	}

	g.schedule(draft.ID, draft.Step.String(), payload)
	return nil
}

// Flush writes the remote snapshot immediately, cancelling any pending
// debounced save. Used by the manual save endpoint and by finalization.
func (g *AutosaveGuard) Flush(ctx context.Context, draft *business.ProposalDraft) error {
	g.Cancel(draft.ID)

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}
	return g.saveRemote(ctx, draft.ID, draft.Step.String(), payload)
}

// Cancel drops any pending debounced save for the draft. Called on wizard
// completion or close.
func (g *AutosaveGuard) Cancel(draftID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if timer, ok := g.timers[draftID]; ok {
		timer.Stop()
		delete(g.timers, draftID)
	}
}

// Discard removes every saved trace of the draft, local and remote. Called
// after successful finalization.
func (g *AutosaveGuard) Discard(ctx context.Context, draftID uuid.UUID) {
	g.Cancel(draftID)

	if err := g.store.Delete(ctx, draftID); err != nil {
		g.logger.Warn("Failed to delete local draft backups",
			zap.String("draft_id", draftID.String()),
			zap.Error(err))
	}
	if err := g.queries.DeleteDraftSnapshot(ctx, draftID); err != nil {
		g.logger.Warn("Failed to delete remote draft snapshot",
			zap.String("draft_id", draftID.String()),
			zap.Error(err))
	}
}

// Recover returns the most recent saved state of a draft: the local backup
// when one is still live, otherwise the remote snapshot. ErrNoBackup means
// nothing recoverable exists.
func (g *AutosaveGuard) Recover(ctx context.Context, draftID uuid.UUID) (*business.ProposalDraft, error) {
	record, err := g.store.Latest(ctx, draftID)
	if err == nil {
		var draft business.ProposalDraft
		if unmarshalErr := json.Unmarshal(record.Payload, &draft); unmarshalErr == nil {
			return &draft, nil
		}
		g.logger.Warn("Local draft backup is unreadable, falling back to remote",
			zap.String("draft_id", draftID.String()))
	} else if !errors.Is(err, backup.ErrNotFound) {
		g.logger.Warn("Local backup lookup failed, falling back to remote",
			zap.String("draft_id", draftID.String()),
			zap.Error(err))
	}

	snapshot, err := g.queries.GetDraftSnapshot(ctx, draftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoBackup
		}
		return nil, fmt.Errorf("failed to load draft snapshot: %w", err)
	}

	var draft business.ProposalDraft
	if err := json.Unmarshal(snapshot.Payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft snapshot: %w", err)
	}
	return &draft, nil
}

func (g *AutosaveGuard) schedule(draftID uuid.UUID, step string, payload []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if timer, ok := g.timers[draftID]; ok {
		timer.Stop()
	}

	g.timers[draftID] = time.AfterFunc(g.delay, func() {
		g.mu.Lock()
		delete(g.timers, draftID)
		g.mu.Unlock()

		// The originating request is long gone when the timer fires.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := g.saveRemote(ctx, draftID, step, payload)
		if g.notify != nil {
			g.notify(draftID, err)
		}
	})
}

func (g *AutosaveGuard) saveRemote(ctx context.Context, draftID uuid.UUID, step string, payload []byte) error {
	err := g.queries.UpsertDraftSnapshot(ctx, db.UpsertDraftSnapshotParams{
		DraftID: draftID,
		Step:    step,
		Payload: payload,
	})
	if err != nil {
		g.logger.Warn("Remote draft snapshot failed",
			zap.String("draft_id", draftID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to save draft snapshot: %w", err)
	}
	return nil
}
