// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Helpers ─────────────────────────────────────────────────────────────────

const (
	testTimeout  = 10 * time.Second
	testNavDelay = 1500 * time.Millisecond
)

type fixture struct {
	ctrl      *Controller
	form      *form.Form
	clock     *clock.Mock
	submitter *mock.MockSubmitter
	notifier  *mock.MockNotifier
	navigator *mock.MockNavigator
	logs      *bytes.Buffer
}

func newProductForm(t *testing.T) *form.Form {
	t.Helper()
	f, err := form.New("product", []form.Field{
		{Name: "name", Label: "Name", Rule: validators.Required("Name is required")},
		{
			Name:   "stock",
			Label:  "Stock",
			Rule:   validators.All(validators.Required("Stock is required"), validators.Integer(validators.NumberMessages{Invalid: "Stock must be a valid integer", Negative: "Stock cannot be negative"})),
			Coerce: form.CoerceInt,
		},
	}, nil, nil)
	require.NoError(t, err)
	return f
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mc := gomock.NewController(t)

	fx := &fixture{
		form:      newProductForm(t),
		clock:     clock.NewMock(),
		submitter: mock.NewMockSubmitter(mc),
		notifier:  mock.NewMockNotifier(mc),
		navigator: mock.NewMockNavigator(mc),
		logs:      &bytes.Buffer{},
	}
	l := &logger.Logger{Logger: zerolog.New(fx.logs).Level(zerolog.DebugLevel)}

	fx.ctrl = NewController(fx.form, Config{
		Destination:     "inventory",
		SuccessTemplate: "Product ${name} created successfully",
		SubmitTimeout:   testTimeout,
		NavigateDelay:   testNavDelay,
	}, Ports{
		Submitter: fx.submitter,
		Notifier:  fx.notifier,
		Navigator: fx.navigator,
	}, fx.clock, l)

	return fx
}

func (fx *fixture) fill(t *testing.T) {
	t.Helper()
	require.NoError(t, fx.form.Set("name", "Laptop"))
	require.NoError(t, fx.form.Set("stock", "7"))
}

// transitions returns the destination states logged by the state machine.
func (fx *fixture) transitions(t *testing.T) []string {
	t.Helper()
	var states []string
	for _, line := range strings.Split(strings.TrimSpace(fx.logs.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "submission state changed" {
			states = append(states, entry["to"].(string))
		}
	}
	return states
}

func success(sub models.Submission) (models.Receipt, error) {
	return models.Receipt{SubmissionID: sub.ID, FormID: sub.FormID, AcceptedAt: sub.SubmittedAt}, nil
}

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting")
		return ""
	}
}

// ── Submit: success ─────────────────────────────────────────────────────────

func TestController_SubmitSucceedsExactlyOnce(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)

	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub models.Submission) (models.Receipt, error) {
			assert.Equal(t, "product", sub.FormID)
			assert.Equal(t, models.Payload{"name": "Laptop", "stock": int64(7)}, sub.Payload)
			assert.NotEmpty(t, sub.ID)
			return success(sub)
		}).Times(1)
	fx.notifier.EXPECT().Notify(models.Notification{
		Level:   models.NotificationSuccess,
		FormID:  "product",
		Message: "Product Laptop created successfully",
	}).Times(1)

	navigated := make(chan string, 1)
	fx.navigator.EXPECT().Navigate("inventory").Do(func(d string) { navigated <- d }).Times(1)

	res, err := fx.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ResultSucceeded, res.Status)
	assert.Equal(t, res.Submission.ID, res.Receipt.SubmissionID)

	assert.Equal(t, []string{StateValidating, StateSubmitting, StateSucceeded, StateIdle}, fx.transitions(t))
	assert.Equal(t, StateIdle, fx.ctrl.State())
	assert.False(t, fx.ctrl.Busy())

	for _, st := range fx.form.Fields() {
		assert.Equal(t, form.Untouched, st.Status, st.Name)
		assert.Empty(t, st.Value, st.Name)
	}

	fx.clock.Add(testNavDelay - time.Millisecond)
	select {
	case <-navigated:
		t.Fatal("navigated before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	fx.clock.Add(time.Millisecond)
	assert.Equal(t, "inventory", waitFor(t, navigated))
}

func TestController_BeginAwaitComplete(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)
	ctx := context.Background()

	sub, err := fx.ctrl.Begin(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, fx.ctrl.State())
	assert.True(t, fx.ctrl.Busy(), "affordance stays disabled while submitting")
	assert.Equal(t, fx.clock.Now().UTC(), sub.SubmittedAt)

	t.Run("re-entrant begin is rejected by the state guard", func(t *testing.T) {
		_, err := fx.ctrl.Begin(ctx)
		require.ErrorIs(t, err, ErrSubmissionInProgress)
		assert.Equal(t, StateSubmitting, fx.ctrl.State())
	})

	fx.submitter.EXPECT().Submit(gomock.Any(), sub).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Receipt, error) { return success(s) })
	res := fx.ctrl.Await(ctx, sub)
	require.Equal(t, models.ResultSucceeded, res.Status)
	assert.True(t, fx.ctrl.Busy(), "await does not change the state")

	t.Run("stale result is refused", func(t *testing.T) {
		other := res
		other.Submission.ID = "other"
		require.ErrorIs(t, fx.ctrl.Complete(ctx, other), ErrNotSubmitting)
	})

	t.Run("pending result is refused", func(t *testing.T) {
		require.ErrorIs(t, fx.ctrl.Complete(ctx, models.SubmissionResult{Submission: sub}), ErrNotSubmitting)
	})

	fx.notifier.EXPECT().Notify(gomock.Any())
	fx.navigator.EXPECT().Navigate("inventory").AnyTimes()
	require.NoError(t, fx.ctrl.Complete(ctx, res))
	assert.False(t, fx.ctrl.Busy())

	require.ErrorIs(t, fx.ctrl.Complete(ctx, res), ErrNotSubmitting)
}

// ── Submit: blocked ─────────────────────────────────────────────────────────

func TestController_BlockedWhenInvalid(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.form.Set("stock", "-2"))

	fx.notifier.EXPECT().Notify(models.Notification{
		Level:   models.NotificationError,
		FormID:  "product",
		Message: InvalidFormMessage,
	}).Times(1)

	res, err := fx.ctrl.Submit(context.Background())
	require.ErrorIs(t, err, ErrFormInvalid)
	assert.Contains(t, err.Error(), "name, stock")
	assert.Equal(t, models.ResultPending, res.Status)

	assert.Equal(t, []string{StateValidating, StateBlocked, StateIdle}, fx.transitions(t))
	assert.Equal(t, StateIdle, fx.ctrl.State())

	name, err := fx.form.Field("name")
	require.NoError(t, err)
	assert.Equal(t, form.Invalid, name.Status)
	assert.Equal(t, "Name is required", name.Message)

	stock, err := fx.form.Field("stock")
	require.NoError(t, err)
	assert.Equal(t, "-2", stock.Value, "values are kept")
}

// ── Submit: rejected ────────────────────────────────────────────────────────

func TestController_RejectedKeepsValues(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)

	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Receipt{}, errors.New("server unavailable"))
	fx.notifier.EXPECT().Notify(models.Notification{
		Level:   models.NotificationError,
		FormID:  "product",
		Message: "Submission failed: server unavailable",
	})

	res, err := fx.ctrl.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionRejected)
	assert.Equal(t, models.ResultRejected, res.Status)
	assert.Equal(t, "server unavailable", res.Reason)

	assert.Equal(t, []string{StateValidating, StateSubmitting, StateFailed, StateIdle}, fx.transitions(t))
	assert.Equal(t, "Laptop", fx.form.Value("name"))
	assert.True(t, fx.form.Submittable())
	assert.False(t, fx.ctrl.Busy())

	// retry succeeds
	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Receipt, error) { return success(s) })
	fx.notifier.EXPECT().Notify(gomock.Any())
	fx.navigator.EXPECT().Navigate(gomock.Any()).AnyTimes()

	res, err = fx.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ResultSucceeded, res.Status)
}

func TestController_AwaitTimeout(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)

	started := make(chan string, 1)
	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Submission) (models.Receipt, error) {
			started <- "started"
			<-ctx.Done()
			return models.Receipt{}, ctx.Err()
		})

	sub, err := fx.ctrl.Begin(context.Background())
	require.NoError(t, err)

	results := make(chan models.SubmissionResult, 1)
	go func() { results <- fx.ctrl.Await(context.Background(), sub) }()

	waitFor(t, started)
	fx.clock.Add(testTimeout)

	select {
	case res := <-results:
		assert.Equal(t, models.ResultRejected, res.Status)
		assert.Equal(t, "submission timed out", res.Reason)
		require.ErrorIs(t, res.Err, ErrSubmissionTimeout)
	case <-time.After(2 * time.Second):
		t.Fatal("await did not time out")
	}
}

func TestController_AwaitCancelled(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)

	started := make(chan string, 1)
	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Submission) (models.Receipt, error) {
			started <- "started"
			<-ctx.Done()
			return models.Receipt{}, ctx.Err()
		})
	fx.notifier.EXPECT().Notify(models.Notification{
		Level:   models.NotificationError,
		FormID:  "product",
		Message: "Submission failed: submission cancelled",
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		waitFor(t, started)
		cancel()
	}()

	res, err := fx.ctrl.Submit(ctx)
	require.ErrorIs(t, err, ErrSubmissionCancelled)
	assert.Equal(t, "submission cancelled", res.Reason)
	assert.Equal(t, StateIdle, fx.ctrl.State())
}

// ── Navigation ──────────────────────────────────────────────────────────────

func TestController_CloseCancelsNavigation(t *testing.T) {
	fx := newFixture(t)
	fx.fill(t)

	fx.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Receipt, error) { return success(s) })
	fx.notifier.EXPECT().Notify(gomock.Any())

	_, err := fx.ctrl.Submit(context.Background())
	require.NoError(t, err)

	fx.ctrl.Close()
	fx.clock.Add(2 * testNavDelay)
	time.Sleep(20 * time.Millisecond)

	fx.ctrl.Close()
}

func TestController_NoDestination(t *testing.T) {
	mc := gomock.NewController(t)
	submitter := mock.NewMockSubmitter(mc)
	submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Receipt, error) { return success(s) })

	f := newProductForm(t)
	require.NoError(t, f.Set("name", "Mouse"))
	require.NoError(t, f.Set("stock", "1"))

	c := NewController(f, Config{}, Ports{Submitter: submitter}, nil, nil)
	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ResultSucceeded, res.Status)
	assert.Equal(t, StateIdle, c.State())
}

// ── SuccessMessage ──────────────────────────────────────────────────────────

func TestController_SuccessMessage(t *testing.T) {
	tests := []struct {
		name     string
		template string
		payload  models.Payload
		want     string
	}{
		{name: "default", want: DefaultSuccessMessage},
		{name: "single", template: "Product ${name} created successfully", payload: models.Payload{"name": "Laptop"}, want: "Product Laptop created successfully"},
		{name: "two names", template: "User ${first_name} ${last_name} created successfully", payload: models.Payload{"first_name": "Ana", "last_name": "Rojas"}, want: "User Ana Rojas created successfully"},
		{name: "number", template: "Stock ${stock}", payload: models.Payload{"stock": int64(3)}, want: "Stock 3"},
		{name: "missing", template: "Hello ${name}", payload: models.Payload{}, want: "Hello "},
		{name: "nil value", template: "Hello ${name}", payload: models.Payload{"name": nil}, want: "Hello "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(newProductForm(t), Config{SuccessTemplate: tt.template}, Ports{}, nil, nil)
			assert.Equal(t, tt.want, c.SuccessMessage(tt.payload))
		})
	}
}
