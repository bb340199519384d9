package submission

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/benbjohnson/clock"
	"github.com/looplab/fsm"
)

const (
	StateIdle       = "idle"
	StateValidating = "validating"
	StateBlocked    = "blocked"
	StateSubmitting = "submitting"
	StateSucceeded  = "succeeded"
	StateFailed     = "failed"

	eventSubmit  = "submit"
	eventBlock   = "block"
	eventAccept  = "accept"
	eventSucceed = "succeed"
	eventFail    = "fail"
	eventSettle  = "settle"
)

const (
	InvalidFormMessage    = "Please correct the highlighted fields"
	DefaultSuccessMessage = "Form submitted successfully"
	timeoutReason         = "submission timed out"
	cancelledReason       = "submission cancelled"
)

// Config describes what happens around a single form's submission.
type Config struct {
	// Destination is the logical view navigated to after a success.
	Destination string
	// SuccessTemplate is expanded with the payload values, e.g.
	// "Product ${name} created successfully".
	SuccessTemplate string

	SubmitTimeout time.Duration
	NavigateDelay time.Duration
}

// Ports groups the collaborators of a Controller.
type Ports struct {
	Submitter Submitter
	Notifier  Notifier
	Navigator Navigator
}

// Controller drives the submit workflow of one form.
type Controller struct {
	form   *form.Form
	cfg    Config
	ports  Ports
	clock  clock.Clock
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	machine *fsm.FSM

	mu         sync.Mutex
	pending    string
	navigation *clock.Timer
}

// NewController returns an idle controller for f.
func NewController(f *form.Form, cfg Config, ports Ports, c clock.Clock, l *logger.Logger) *Controller {
	if c == nil {
		c = clock.New()
	}
	if l == nil {
		l = logger.Nop()
	}

	ctrl := &Controller{
		form:   f,
		cfg:    cfg,
		ports:  ports,
		clock:  c,
		ids:    utils.NewUUIDGenerator(),
		logger: l,
	}

	ctrl.machine = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: eventSubmit, Src: []string{StateIdle}, Dst: StateValidating},
			{Name: eventBlock, Src: []string{StateValidating}, Dst: StateBlocked},
			{Name: eventAccept, Src: []string{StateValidating}, Dst: StateSubmitting},
			{Name: eventSucceed, Src: []string{StateSubmitting}, Dst: StateSucceeded},
			{Name: eventFail, Src: []string{StateSubmitting}, Dst: StateFailed},
			{Name: eventSettle, Src: []string{StateBlocked, StateSucceeded, StateFailed}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				ctrl.logger.Debug().
					Str("form", f.ID()).
					Str("event", e.Event).
					Str("from", e.Src).
					Str("to", e.Dst).
					Msg("submission state changed")
			},
		},
	)

	return ctrl
}

// Form returns the form the controller submits.
func (c *Controller) Form() *form.Form {
	return c.form
}

// State returns the current state name.
func (c *Controller) State() string {
	return c.machine.Current()
}

// Busy reports whether a submission is being validated or delivered. Hosts
// disable their submit affordance and show a busy indicator while it is true.
func (c *Controller) Busy() bool {
	s := c.machine.Current()
	return s == StateValidating || s == StateSubmitting
}

// Begin starts a submission attempt. It fails with ErrSubmissionInProgress
// unless the controller is idle and with ErrFormInvalid when any field is
// invalid after validating the whole form. On success the controller is
// submitting and the returned submission must be passed to Await and then
// Complete.
func (c *Controller) Begin(ctx context.Context) (models.Submission, error) {
	if err := c.fire(eventSubmit); err != nil {
		return models.Submission{}, fmt.Errorf("%w: state %s", ErrSubmissionInProgress, c.State())
	}

	if !c.form.ValidateAll() {
		invalid := c.form.Invalid()
		c.block(InvalidFormMessage)
		logger.FromContext(ctx).Debug().Strs("fields", invalid).Str("form", c.form.ID()).Msg("submission blocked")
		return models.Submission{}, fmt.Errorf("%w: %s", ErrFormInvalid, strings.Join(invalid, ", "))
	}

	payload, err := c.form.Payload()
	if err != nil {
		c.block("The form could not be prepared for submission")
		return models.Submission{}, fmt.Errorf("assemble payload: %w", err)
	}

	sub := models.Submission{
		ID:          c.ids.Generate(),
		FormID:      c.form.ID(),
		Payload:     payload,
		SubmittedAt: c.clock.Now().UTC(),
	}

	c.mu.Lock()
	c.pending = sub.ID
	c.mu.Unlock()

	if err = c.fire(eventAccept); err != nil {
		return models.Submission{}, fmt.Errorf("accept submission: %w", err)
	}
	return sub, nil
}

// Await hands sub to the Submitter, bounded by the configured timeout and by
// ctx. It never touches the form.
func (c *Controller) Await(ctx context.Context, sub models.Submission) models.SubmissionResult {
	var cancel context.CancelFunc
	if c.cfg.SubmitTimeout > 0 {
		ctx, cancel = c.clock.WithTimeout(ctx, c.cfg.SubmitTimeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	type outcome struct {
		receipt models.Receipt
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		receipt, err := c.ports.Submitter.Submit(ctx, sub)
		done <- outcome{receipt: receipt, err: err}
	}()

	select {
	case o := <-done:
		if o.err == nil {
			return models.Succeeded(sub, o.receipt)
		}
		if ctx.Err() != nil {
			return interrupted(ctx, sub)
		}
		return models.Rejected(sub, o.err.Error(), fmt.Errorf("%w: %w", ErrSubmissionRejected, o.err))
	case <-ctx.Done():
		return interrupted(ctx, sub)
	}
}

func interrupted(ctx context.Context, sub models.Submission) models.SubmissionResult {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return models.Rejected(sub, timeoutReason, ErrSubmissionTimeout)
	}
	return models.Rejected(sub, cancelledReason, ErrSubmissionCancelled)
}

// Complete applies the result of Await. A success notifies, resets every
// field and schedules navigation to the destination; a rejection notifies and
// keeps the values so the user can retry. Both end idle.
func (c *Controller) Complete(ctx context.Context, res models.SubmissionResult) error {
	if c.State() != StateSubmitting {
		return ErrNotSubmitting
	}

	c.mu.Lock()
	pending := c.pending
	c.mu.Unlock()
	if res.Submission.ID != pending {
		return fmt.Errorf("%w: result for %q while %q is pending", ErrNotSubmitting, res.Submission.ID, pending)
	}

	switch res.Status {
	case models.ResultSucceeded:
		_ = c.fire(eventSucceed)
		c.notify(models.NotificationSuccess, c.SuccessMessage(res.Submission.Payload))
		c.form.Reset()
		_ = c.fire(eventSettle)
		c.scheduleNavigation()
		logger.FromContext(ctx).Info().
			Str("form", c.form.ID()).
			Str("submission_id", res.Submission.ID).
			Msg("submission succeeded")
	case models.ResultRejected:
		_ = c.fire(eventFail)
		c.notify(models.NotificationError, "Submission failed: "+res.Reason)
		_ = c.fire(eventSettle)
		logger.FromContext(ctx).Err(res.Err).
			Str("form", c.form.ID()).
			Str("submission_id", res.Submission.ID).
			Msg("submission rejected")
	default:
		return fmt.Errorf("%w: result is still pending", ErrNotSubmitting)
	}

	c.mu.Lock()
	c.pending = ""
	c.mu.Unlock()
	return nil
}

// Submit runs Begin, Await and Complete in one call. A rejected submission is
// returned together with its error.
func (c *Controller) Submit(ctx context.Context) (models.SubmissionResult, error) {
	sub, err := c.Begin(ctx)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	res := c.Await(ctx, sub)
	if err = c.Complete(ctx, res); err != nil {
		return res, err
	}
	if res.Status == models.ResultRejected {
		return res, res.Err
	}
	return res, nil
}

// Close cancels a pending navigation. Hosts call it when the form unmounts.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.navigation != nil {
		c.navigation.Stop()
		c.navigation = nil
	}
}

// SuccessMessage expands the success template with payload values.
func (c *Controller) SuccessMessage(payload models.Payload) string {
	if c.cfg.SuccessTemplate == "" {
		return DefaultSuccessMessage
	}
	return os.Expand(c.cfg.SuccessTemplate, func(key string) string {
		v, ok := payload[key]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	})
}

func (c *Controller) fire(event string) error {
	// state changes must not be interrupted by a caller's context
	return c.machine.Event(context.Background(), event)
}

func (c *Controller) block(message string) {
	_ = c.fire(eventBlock)
	c.notify(models.NotificationError, message)
	_ = c.fire(eventSettle)
}

func (c *Controller) notify(level models.NotificationLevel, message string) {
	if c.ports.Notifier == nil {
		return
	}
	c.ports.Notifier.Notify(models.Notification{
		Level:   level,
		FormID:  c.form.ID(),
		Message: message,
	})
}

func (c *Controller) scheduleNavigation() {
	if c.cfg.Destination == "" || c.ports.Navigator == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.navigation != nil {
		c.navigation.Stop()
	}
	destination := c.cfg.Destination
	navigator := c.ports.Navigator
	c.navigation = c.clock.AfterFunc(c.cfg.NavigateDelay, func() {
		navigator.Navigate(destination)
	})
}
