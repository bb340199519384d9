package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
)

const historyLimit = 50

func historyPage(destination string) string {
	return "history:" + destination
}

// HistoryModel lists the accepted submissions of every form that navigates
// to one destination, newest first.
type HistoryModel struct {
	ctx     context.Context
	title   string
	page    string
	formIDs []string
	history service.HistoryService

	// copy writes to the system clipboard; replaced in tests.
	copy func(string) error

	records []models.Record
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error
}

func NewHistoryModel(ctx context.Context, title, destination string, formIDs []string, history service.HistoryService) *HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HistoryModel{
		ctx:     ctx,
		title:   title,
		page:    historyPage(destination),
		formIDs: formIDs,
		history: history,
		copy:    clipboard.WriteAll,
		spinner: s,
	}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *HistoryModel) load() tea.Cmd {
	ctx, history, page := m.ctx, m.history, m.page
	formIDs := append([]string(nil), m.formIDs...)

	return func() tea.Msg {
		var all []models.Record
		for _, id := range formIDs {
			records, err := history.List(ctx, id, historyLimit)
			if err != nil {
				return historyLoadedMsg{page: page, err: err}
			}
			all = append(all, records...)
		}
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].AcceptedAt.After(all[j].AcceptedAt)
		})
		return historyLoadedMsg{page: page, records: all}
	}
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		m.records = msg.records
		if m.idx >= len(m.records) {
			m.idx = max(len(m.records)-1, 0)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.id
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: menuPage} }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.records)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.copy):
			rec, ok := m.current()
			if !ok {
				return m, nil
			}
			id, copyFn := rec.ID, m.copy
			return m, func() tea.Msg { return copiedMsg{id: id, err: copyFn(id)} }
		}
	}

	return m, nil
}

func (m *HistoryModel) current() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case m.lastErr != nil:
		b.WriteString(errorStyle.Render("Error: " + humanizeServerUnavailableError(m.lastErr)))
	case len(m.records) == 0:
		b.WriteString("No submissions yet")
	default:
		for i, rec := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %-8s  %s\n",
				cursor,
				rec.AcceptedAt.Local().Format("2006-01-02 15:04"),
				rec.FormID,
				fitText(summarize(rec.Payload), 48),
			))
		}
		if rec, ok := m.current(); ok {
			b.WriteString("\nid: ")
			b.WriteString(rec.ID)
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(strings.ToUpper(m.title), strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ c: copy id │ r: reload │ esc: menu")
}

// summarize joins the string values of a payload in key order.
func summarize(p models.Payload) string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, k := range names {
		// bcrypt hashes of secret fields are not worth showing
		if s, ok := p[k].(string); ok && s != "" && !strings.HasPrefix(s, "$2a$") {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
