package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/app"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

// ── Simulated ───────────────────────────────────────────────────────────────

type submitResult struct {
	receipt models.Receipt
	err     error
}

func TestSimulatedSubmitter_AcceptsAfterDelay(t *testing.T) {
	c := clock.NewMock()
	s := NewSimulatedSubmitter(c, 1500*time.Millisecond, logger.Nop())
	sub := contactSubmission()

	done := make(chan submitResult, 1)
	go func() {
		r, err := s.Submit(context.Background(), sub)
		done <- submitResult{r, err}
	}()

	// the timer may not be registered yet; keep advancing until it fires
	deadline := time.After(5 * time.Second)
	for {
		select {
		case res := <-done:
			require.NoError(t, res.err)
			assert.Equal(t, sub.ID, res.receipt.SubmissionID)
			assert.Equal(t, "contact", res.receipt.FormID)
			assert.False(t, res.receipt.AcceptedAt.IsZero())
			return
		case <-deadline:
			t.Fatal("simulated submitter never accepted")
		default:
			c.Add(500 * time.Millisecond)
		}
	}
}

func TestSimulatedSubmitter_HonoursContext(t *testing.T) {
	s := NewSimulatedSubmitter(clock.NewMock(), time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Submit(ctx, contactSubmission())
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Remote ──────────────────────────────────────────────────────────────────

func TestRemoteSubmitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntakeAdapter(ctrl)

	sub := contactSubmission()
	want := models.Receipt{SubmissionID: sub.ID, FormID: sub.FormID, AcceptedAt: time.Now().UTC()}
	intake.EXPECT().Submit(gomock.Any(), sub).Return(want, nil)

	got, err := NewRemoteSubmitter(intake, logger.Nop()).Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoteSubmitter_MapsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	intake := mock.NewMockIntakeAdapter(ctrl)
	intake.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(models.Receipt{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgSubmissionExists))

	_, err := NewRemoteSubmitter(intake, logger.Nop()).Submit(context.Background(), contactSubmission())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, body string) error { return fmt.Errorf("%w: %s", sentinel, body) }
	network := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"conflict", wrap(adapter.ErrConflict, app.MsgSubmissionExists), ErrAlreadySubmitted},
		{"unknown form", wrap(adapter.ErrNotFound, app.MsgUnknownForm), ErrFormNotOnServer},
		{"invalid submission", wrap(adapter.ErrBadRequest, app.MsgInvalidSubmission), ErrRejectedByServer},
		{"bad request with detail", wrap(adapter.ErrBadRequest, "weird"), ErrRejectedByServer},
		{"unavailable", wrap(adapter.ErrServiceUnavailable, app.MsgTemporarilyUnavailable), ErrServerUnavailable},
		{"bad gateway", wrap(adapter.ErrBadGateway, ""), ErrServerUnavailable},
		{"internal", wrap(adapter.ErrInternalServerError, app.MsgInternalServerError), ErrServerFailure},
		{"other not found", wrap(adapter.ErrNotFound, "404 page not found"), adapter.ErrNotFound},
		{"network", network, network},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

// ── Recording ───────────────────────────────────────────────────────────────

func TestRecordingSubmitter_SavesAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockSubmitter(ctrl)
	repo := mock.NewMockSubmissionRepository(ctrl)

	sub := contactSubmission()
	receipt := models.Receipt{SubmissionID: sub.ID, FormID: sub.FormID, AcceptedAt: time.Now().UTC()}

	next.EXPECT().Submit(gomock.Any(), sub).Return(receipt, nil)
	repo.EXPECT().Save(gomock.Any(), models.NewRecord(sub, receipt.AcceptedAt)).Return(nil)

	s := NewRecordingWrapper(repo, logger.Nop()).Wrap(next)
	got, err := s.Submit(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, receipt, got)
}

func TestRecordingSubmitter_SaveFailureKeepsReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockSubmitter(ctrl)
	repo := mock.NewMockSubmissionRepository(ctrl)

	receipt := models.Receipt{SubmissionID: testSubmissionID, FormID: "contact"}
	next.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(receipt, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrTemporarilyUnavailable)

	got, err := NewRecordingWrapper(repo, logger.Nop()).Wrap(next).Submit(context.Background(), contactSubmission())

	require.NoError(t, err)
	assert.Equal(t, receipt, got)
}

func TestRecordingSubmitter_SkipsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockSubmitter(ctrl)
	repo := mock.NewMockSubmissionRepository(ctrl)

	next.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Receipt{}, ErrServerUnavailable)

	_, err := NewRecordingWrapper(repo, logger.Nop()).Wrap(next).Submit(context.Background(), contactSubmission())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestRecordingSubmitter_SavesAfterCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockSubmitter(ctrl)
	repo := mock.NewMockSubmissionRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	next.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.Submission) (models.Receipt, error) {
			cancel()
			return models.Receipt{SubmissionID: testSubmissionID}, nil
		})
	var saveCtxErr error
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.Record) error {
			saveCtxErr = ctx.Err()
			return nil
		})

	_, err := NewRecordingWrapper(repo, logger.Nop()).Wrap(next).Submit(ctx, contactSubmission())
	require.NoError(t, err)
	assert.NoError(t, saveCtxErr)
}
