package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// programNavigator implements submission.Navigator by sending NavigateTo to
// the running program. Navigate is called from clock timer goroutines.
type programNavigator struct {
	mu    sync.Mutex
	send  func(tea.Msg)
	pages map[string]bool
}

func newProgramNavigator() *programNavigator {
	return &programNavigator{pages: make(map[string]bool)}
}

func (n *programNavigator) bind(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *programNavigator) register(page string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pages[page] = true
}

// Navigate maps a logical destination to a page. "home" and unknown
// destinations open the menu.
func (n *programNavigator) Navigate(destination string) {
	n.mu.Lock()
	send := n.send
	page := historyPage(destination)
	if !n.pages[page] {
		page = menuPage
	}
	n.mu.Unlock()

	if send != nil {
		send(NavigateTo{Page: page})
	}
}
