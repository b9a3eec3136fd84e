package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"shootic-cli/store"
)

func newLoginInputs() []textinput.Model {
	email := textinput.New()
	email.Placeholder = "admin@shootic.com"
	email.CharLimit = 120
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return []textinput.Model{email, password}
}

func (m appModel) startLogin() (appModel, tea.Cmd, bool) {
	m.resetLoginInputs()
	m.state = stateAdminLogin
	return m, textinput.Blink, true
}

func (m *appModel) resetLoginInputs() {
	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
		m.loginInputs[i].Blur()
	}
	m.loginFocus = 0
	m.loginInputs[0].Focus()
}

func (m appModel) focusLoginInput(index int) (appModel, tea.Cmd, bool) {
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	m.loginFocus = index
	m.loginInputs[index].Focus()
	return m, textinput.Blink, true
}

func (m appModel) handleLoginKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.state = stateHome
		return m, nil, true
	case "tab", "down", "shift+tab", "up":
		return m.focusLoginInput(1 - m.loginFocus)
	}
	if msg.Type == tea.KeyEnter {
		if m.loginFocus == 0 {
			return m.focusLoginInput(1)
		}
		email := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if email == "" || password == "" {
			m.setNotice("Email and password are required.", true)
			return m, nil, true
		}
		m.clearNotice()
		m.state = stateLoggingIn
		return m, tea.Batch(m.loginCmd(email, password), m.spinner.Tick), true
	}
	return m, nil, false
}

func (m appModel) handleLoginResult(msg loginMsg) (tea.Model, tea.Cmd) {
	if m.state != stateLoggingIn {
		return m, nil
	}
	if msg.err != nil {
		m.state = stateAdminLogin
		m.loginInputs[1].SetValue("")
		m.setNotice("Login failed: "+msg.err.Error(), true)
		return m, nil
	}
	m.session.token = msg.token
	_ = store.SaveSession(msg.token)
	m.clearNotice()
	m.state = stateLoadingDashboard
	return m, tea.Batch(m.fetchDashboardCmd(), m.spinner.Tick)
}

func (m appModel) handleDashboardKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		m.state = stateHome
		return m, nil, true
	case "b":
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(1), m.spinner.Tick), true
	case "c":
		m.state = stateLoadingContacts
		return m, tea.Batch(m.fetchContactsCmd(1), m.spinner.Tick), true
	case "r":
		m.state = stateLoadingDashboard
		return m, tea.Batch(m.fetchDashboardCmd(), m.spinner.Tick), true
	case "l":
		m.session.token = ""
		_ = store.ClearSession()
		m.setNotice("Signed out.", false)
		m.state = stateHome
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) handleBookingsKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc", "d":
		m.state = stateAdminDashboard
		return m, nil, true
	case "c":
		m.state = stateLoadingContacts
		return m, tea.Batch(m.fetchContactsCmd(1), m.spinner.Tick), true
	case "right", "n":
		if m.bookingsPage.Pagination.Page >= m.bookingsPage.Pagination.TotalPages {
			return m, nil, true
		}
		next := m.bookingsPage.Pagination.Page + 1
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(next), m.spinner.Tick), true
	case "left", "p":
		if m.bookingsPage.Pagination.Page <= 1 {
			return m, nil, true
		}
		prev := m.bookingsPage.Pagination.Page - 1
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(prev), m.spinner.Tick), true
	}
	return m, nil, false
}

func (m appModel) handleContactsKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc", "d":
		m.state = stateAdminDashboard
		return m, nil, true
	case "b":
		m.state = stateLoadingBookings
		return m, tea.Batch(m.fetchBookingsCmd(1), m.spinner.Tick), true
	case "right", "n":
		if m.contactsPage.Pagination.Page >= m.contactsPage.Pagination.TotalPages {
			return m, nil, true
		}
		next := m.contactsPage.Pagination.Page + 1
		m.state = stateLoadingContacts
		return m, tea.Batch(m.fetchContactsCmd(next), m.spinner.Tick), true
	case "left", "p":
		if m.contactsPage.Pagination.Page <= 1 {
			return m, nil, true
		}
		prev := m.contactsPage.Pagination.Page - 1
		m.state = stateLoadingContacts
		return m, tea.Batch(m.fetchContactsCmd(prev), m.spinner.Tick), true
	}
	return m, nil, false
}
