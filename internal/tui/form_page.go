package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-keeper/internal/form"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/submission"
	"github.com/MKhiriev/go-form-keeper/models"
)

func formPage(formID string) string {
	return "form:" + formID
}

// FormModel renders any catalog form and drives its submission controller.
// It is the controller's Notifier; Notify is only called from Begin and
// Complete, which run inside Update.
type FormModel struct {
	ctx        context.Context
	title      string
	form       *form.Form
	controller *submission.Controller
	logger     *logger.Logger

	names   []string
	inputs  map[string]*textinput.Model
	focus   int
	spinner spinner.Model
	notice  *models.Notification
}

// NewFormModel builds the page for f. Navigation after a successful
// submission goes through navigator.
func NewFormModel(ctx context.Context, title string, f *form.Form, cfg submission.Config, submitter submission.Submitter, navigator submission.Navigator, c clock.Clock, l *logger.Logger) *FormModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &FormModel{
		ctx:     ctx,
		title:   title,
		form:    f,
		logger:  l,
		names:   f.Names(),
		inputs:  make(map[string]*textinput.Model),
		spinner: s,
	}
	m.controller = submission.NewController(f, cfg, submission.Ports{
		Submitter: submitter,
		Notifier:  m,
		Navigator: navigator,
	}, c, l)

	for _, st := range f.Fields() {
		if !isTextControl(st.Control) {
			continue
		}
		in := textinput.New()
		in.Width = 50
		in.CharLimit = 500
		if st.Control == form.ControlPassword {
			in.EchoMode = textinput.EchoPassword
		}
		if st.Control == form.ControlDate {
			in.Placeholder = "YYYY-MM-DD"
		}
		in.SetValue(st.Value)
		m.inputs[st.Name] = &in
	}
	m.focusField(0)

	return m
}

// Notify implements [submission.Notifier].
func (m *FormModel) Notify(n models.Notification) {
	m.notice = &n
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		if err := m.controller.Complete(m.ctx, msg.result); err != nil {
			m.logger.Err(err).Str("func", "*FormModel.Update").Str("form", m.form.ID()).Msg("error completing submission")
		}
		m.syncInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.controller.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.controller.Busy() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.controller.Close()
		return m, func() tea.Msg { return NavigateTo{Page: menuPage} }
	case "tab", "down":
		m.move(1)
		return m, nil
	case "shift+tab", "up":
		m.move(-1)
		return m, nil
	case "enter":
		return m.submit()
	}

	if len(m.names) == 0 {
		return m, nil
	}
	name := m.names[m.focus]
	st, _ := m.form.Field(name)

	switch st.Control {
	case form.ControlSelect:
		switch msg.String() {
		case "left":
			m.cycle(st, -1)
		case "right":
			m.cycle(st, 1)
		}
		return m, nil

	case form.ControlCheckbox:
		if msg.String() == " " {
			checked, _ := strconv.ParseBool(st.Value)
			m.set(name, strconv.FormatBool(!checked))
		}
		return m, nil
	}

	in, ok := m.inputs[name]
	if !ok {
		return m, nil
	}
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	if in.Value() != before {
		m.set(name, in.Value())
	}
	return m, cmd
}

// move is the focus loss of the current field.
func (m *FormModel) move(delta int) {
	if len(m.names) == 0 {
		return
	}
	if _, err := m.form.Blur(m.names[m.focus]); err != nil {
		m.logger.Err(err).Str("func", "*FormModel.move").Msg("blur failed")
	}
	m.focusField((m.focus + delta + len(m.names)) % len(m.names))
}

func (m *FormModel) focusField(idx int) {
	m.focus = idx
	for i, name := range m.names {
		in, ok := m.inputs[name]
		if !ok {
			continue
		}
		if i == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *FormModel) cycle(st form.FieldState, delta int) {
	if st.Disabled || len(st.Options) == 0 {
		return
	}
	idx := slices.Index(st.Options, st.Value)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(st.Options) - 1
	default:
		idx = (idx + delta + len(st.Options)) % len(st.Options)
	}
	m.set(st.Name, st.Options[idx])
}

func (m *FormModel) set(name, value string) {
	if err := m.form.Set(name, value); err != nil {
		m.logger.Err(err).Str("func", "*FormModel.set").Str("field", name).Msg("set failed")
	}
}

func (m *FormModel) submit() (tea.Model, tea.Cmd) {
	sub, err := m.controller.Begin(m.ctx)
	if err != nil {
		if !errors.Is(err, submission.ErrFormInvalid) {
			m.Notify(models.Notification{Level: models.NotificationError, FormID: m.form.ID(), Message: err.Error()})
		}
		return m, nil
	}

	m.notice = nil
	ctrl, ctx, formID := m.controller, m.ctx, m.form.ID()
	await := func() tea.Msg {
		return submitResultMsg{formID: formID, result: ctrl.Await(ctx, sub)}
	}
	return m, tea.Batch(m.spinner.Tick, await)
}

// syncInputs copies form values back into the text inputs, e.g. after a
// successful submission reset the form.
func (m *FormModel) syncInputs() {
	for name, in := range m.inputs {
		if v := m.form.Value(name); in.Value() != v {
			in.SetValue(v)
		}
	}
}

func (m *FormModel) View() string {
	var b strings.Builder

	for i, st := range m.form.Fields() {
		label := st.Label
		if label == "" {
			label = st.Name
		}
		if i == m.focus {
			label = focusedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}

		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(m.renderControl(st))
		switch st.Status {
		case form.Invalid:
			b.WriteString("  ")
			b.WriteString(errorStyle.Render("✗ " + st.Message))
		case form.Valid:
			b.WriteString("  ")
			b.WriteString(successStyle.Render("✓"))
		}
		b.WriteString("\n")
	}

	if m.controller.Busy() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Submitting...")
	} else if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(renderNotice(*m.notice))
	}

	return renderPage(strings.ToUpper(m.title), strings.TrimRight(b.String(), "\n"),
		"tab/shift+tab: field │ ←/→: option │ space: toggle │ enter: submit │ esc: menu")
}

func (m *FormModel) renderControl(st form.FieldState) string {
	switch st.Control {
	case form.ControlSelect:
		if st.Disabled {
			return disabledStyle.Render("< unavailable >")
		}
		if st.Value == "" {
			return "< choose >"
		}
		return fmt.Sprintf("< %s >", st.Value)
	case form.ControlCheckbox:
		if checked, _ := strconv.ParseBool(st.Value); checked {
			return "[x]"
		}
		return "[ ]"
	}
	if in, ok := m.inputs[st.Name]; ok {
		return in.View()
	}
	return st.Value
}

func renderNotice(n models.Notification) string {
	switch n.Level {
	case models.NotificationError:
		return errorStyle.Render(n.Message)
	case models.NotificationSuccess:
		return successStyle.Render(n.Message)
	default:
		return n.Message
	}
}

func isTextControl(c form.Control) bool {
	switch c {
	case form.ControlSelect, form.ControlCheckbox:
		return false
	}
	return true
}
