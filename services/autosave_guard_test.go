package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contaflow/backoffice/backup"
	"github.com/contaflow/backoffice/internal/db"
	"github.com/contaflow/backoffice/logger"
	"github.com/contaflow/backoffice/mocks"
	"github.com/contaflow/backoffice/types/business"
)

func init() {
	logger.InitLogger("test")
}

func newTestGuard(t *testing.T, querier db.Querier, delay time.Duration) (*AutosaveGuard, *backup.Store) {
	t.Helper()
	store, err := backup.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	guard := NewAutosaveGuard(querier, store)
	guard.delay = delay
	return guard, store
}

func testDraft() *business.ProposalDraft {
	return &business.ProposalDraft{
		ID:        uuid.New(),
		Step:      business.StepConfigureTax,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestAutosaveGuard_LocalBackupIsImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	// A long delay keeps the remote save from ever firing here.
	guard, store := newTestGuard(t, mockQuerier, time.Hour)

	draft := testDraft()
	require.NoError(t, guard.DraftChanged(context.Background(), draft))

	rec, err := store.Latest(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "configure_tax", rec.Step)
}

func TestAutosaveGuard_DebounceCoalescesSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, 30*time.Millisecond)

	saved := make(chan error, 1)
	guard.SetNotify(func(_ uuid.UUID, saveErr error) { saved <- saveErr })

	// Three rapid mutations collapse into one remote snapshot.
	mockQuerier.EXPECT().UpsertDraftSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	draft := testDraft()
	ctx := context.Background()
	require.NoError(t, guard.DraftChanged(ctx, draft))
	require.NoError(t, guard.DraftChanged(ctx, draft))
	require.NoError(t, guard.DraftChanged(ctx, draft))

	select {
	case err := <-saved:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never fired")
	}
}

func TestAutosaveGuard_RemoteFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, 10*time.Millisecond)

	saved := make(chan error, 1)
	guard.SetNotify(func(_ uuid.UUID, saveErr error) { saved <- saveErr })

	mockQuerier.EXPECT().UpsertDraftSnapshot(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	require.NoError(t, guard.DraftChanged(context.Background(), testDraft()))

	select {
	case err := <-saved:
		assert.ErrorContains(t, err, "failed to save draft snapshot")
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never fired")
	}
}

func TestAutosaveGuard_CancelStopsPendingSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, 20*time.Millisecond)

	draft := testDraft()
	require.NoError(t, guard.DraftChanged(context.Background(), draft))
	guard.Cancel(draft.ID)

	// No UpsertDraftSnapshot expectation: a fired save would fail the test.
	time.Sleep(80 * time.Millisecond)
}

func TestAutosaveGuard_FlushSavesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, time.Hour)

	draft := testDraft()
	ctx := context.Background()
	require.NoError(t, guard.DraftChanged(ctx, draft))

	// Flush cancels the pending timer, so exactly one save happens.
	mockQuerier.EXPECT().UpsertDraftSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	require.NoError(t, guard.Flush(ctx, draft))
}

func TestAutosaveGuard_RecoverPrefersLocalBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, time.Hour)

	draft := testDraft()
	draft.Notes = "kept locally"
	require.NoError(t, guard.DraftChanged(context.Background(), draft))

	// No GetDraftSnapshot expectation: the local backup satisfies recovery.
	recovered, err := guard.Recover(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, recovered.ID)
	assert.Equal(t, "kept locally", recovered.Notes)
	assert.Equal(t, business.StepConfigureTax, recovered.Step)
}

func TestAutosaveGuard_RecoverFallsBackToRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, time.Hour)

	draftID := uuid.New()
	mockQuerier.EXPECT().GetDraftSnapshot(gomock.Any(), draftID).Return(db.DraftSnapshot{
		DraftID: draftID,
		Step:    "select_services",
		Payload: []byte(`{"id":"` + draftID.String() + `","step":2,"notes":"from remote"}`),
	}, nil)

	recovered, err := guard.Recover(context.Background(), draftID)
	require.NoError(t, err)
	assert.Equal(t, draftID, recovered.ID)
	assert.Equal(t, "from remote", recovered.Notes)
}

func TestAutosaveGuard_RecoverNothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, _ := newTestGuard(t, mockQuerier, time.Hour)

	draftID := uuid.New()
	mockQuerier.EXPECT().GetDraftSnapshot(gomock.Any(), draftID).
		Return(db.DraftSnapshot{}, pgx.ErrNoRows)

	_, err := guard.Recover(context.Background(), draftID)
	assert.ErrorIs(t, err, ErrNoBackup)
}

func TestAutosaveGuard_DiscardRemovesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	guard, store := newTestGuard(t, mockQuerier, time.Hour)

	draft := testDraft()
	require.NoError(t, guard.DraftChanged(context.Background(), draft))

	mockQuerier.EXPECT().DeleteDraftSnapshot(gomock.Any(), draft.ID).Return(nil)
	guard.Discard(context.Background(), draft.ID)

	_, err := store.Latest(context.Background(), draft.ID)
	assert.ErrorIs(t, err, backup.ErrNotFound)
}
