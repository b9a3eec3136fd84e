package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"shootic-cli/model"
	"shootic-cli/service"
	"shootic-cli/store"
	"shootic-cli/wizard"
)

type appState int

const (
	stateHome appState = iota
	stateServices
	stateWizard
	stateSubmitting
	stateComplete
	stateContact
	stateContactSending
	stateAdminLogin
	stateLoggingIn
	stateLoadingDashboard
	stateAdminDashboard
	stateLoadingBookings
	stateAdminBookings
	stateLoadingContacts
	stateAdminContacts
	stateError
)

const adminPageSize = 10

// sessionBox holds the admin token behind a pointer so the client's token
// source keeps working across the value copies bubbletea makes of the model.
type sessionBox struct {
	token string
}

type appModel struct {
	client  *service.Client
	session *sessionBox

	state     appState
	lastState appState
	err       error

	width  int
	height int

	notice    string
	noticeErr bool

	menuList    list.Model
	serviceList list.Model

	// Booking wizard.
	machine        *wizard.Machine
	seedService    string
	wizPane        int
	wizFocus       int
	wizInputs      []textinput.Model
	fieldErrs      map[string]string
	confirmationID string
	packageList    list.Model
	dateList       list.Model
	timeList       list.Model
	addOnList      list.Model

	// Contact form.
	contactInputs []textinput.Model
	contactFocus  int

	// Admin.
	loginInputs  []textinput.Model
	loginFocus   int
	dashboard    model.DashboardSummary
	bookingList  list.Model
	contactList  list.Model
	bookingsPage model.BookingPage
	contactsPage model.ContactPage

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type loginMsg struct {
	token string
	err   error
}

type bookingSubmittedMsg struct {
	id  string
	err error
}

type contactSubmittedMsg struct {
	err error
}

type dashboardMsg struct {
	summary model.DashboardSummary
	err     error
}

type bookingsPageMsg struct {
	page model.BookingPage
	err  error
}

type contactsPageMsg struct {
	page model.ContactPage
	err  error
}

func New() tea.Model {
	client := service.NewClient(nil)
	session := &sessionBox{}
	client.SetTokenSource(func() string { return session.token })
	if token, ok, err := store.LoadSession(); err == nil && ok {
		session.token = token
	}

	m := appModel{
		client:      client,
		session:     session,
		state:       stateHome,
		seedService: strings.TrimSpace(os.Getenv("SHOOTIC_SERVICE")),
		fieldErrs:   map[string]string{},
	}

	m.menuList = newList("Shootic")
	m.menuList.SetItems(buildMenuItems())
	m.serviceList = newList("Our Services")
	m.serviceList.SetItems(buildServiceItems(""))
	m.packageList = newList("Select Package")
	m.dateList = newList("Choose Date")
	m.timeList = newList("Choose Time")
	m.addOnList = newList("Add-Ons (Optional)")
	m.bookingList = newList("Bookings")
	m.contactList = newList("Contact Messages")

	m.wizInputs = newWizardInputs()
	m.contactInputs = newContactInputs()
	m.loginInputs = newLoginInputs()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		var handled bool
		m, cmd, handled = m.handleKey(msg)
		if handled {
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case loginMsg:
		return m.handleLoginResult(msg)

	case bookingSubmittedMsg:
		return m.handleBookingResult(msg)

	case contactSubmittedMsg:
		return m.handleContactResult(msg)

	case dashboardMsg:
		if m.state != stateLoadingDashboard {
			return m, nil
		}
		if msg.err != nil {
			return m.handleAdminError(msg.err, stateAdminDashboard)
		}
		m.dashboard = msg.summary
		m.state = stateAdminDashboard
		return m, nil

	case bookingsPageMsg:
		if m.state != stateLoadingBookings {
			return m, nil
		}
		if msg.err != nil {
			return m.handleAdminError(msg.err, stateAdminBookings)
		}
		m.bookingsPage = msg.page
		m.bookingList.SetItems(buildBookingRows(msg.page.Bookings))
		m.bookingList.Select(0)
		m.state = stateAdminBookings
		return m, nil

	case contactsPageMsg:
		if m.state != stateLoadingContacts {
			return m, nil
		}
		if msg.err != nil {
			return m.handleAdminError(msg.err, stateAdminContacts)
		}
		m.contactsPage = msg.page
		m.contactList.SetItems(buildContactRows(msg.page.Contacts))
		m.contactList.Select(0)
		m.state = stateAdminContacts
		return m, nil
	}

	return m.updateComponents(msg)
}

// updateComponents routes unhandled messages to whichever component the
// current state shows.
func (m appModel) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateHome:
		m.menuList, cmd = m.menuList.Update(msg)
	case stateServices:
		m.serviceList, cmd = m.serviceList.Update(msg)
	case stateWizard:
		return m.updateWizardComponents(msg)
	case stateContact:
		m.contactInputs[m.contactFocus], cmd = m.contactInputs[m.contactFocus].Update(msg)
	case stateAdminLogin:
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	case stateAdminBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	case stateAdminContacts:
		m.contactList, cmd = m.contactList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateHome:
		return m.handleHomeKey(msg)
	case stateServices:
		return m.handleServicesKey(msg)
	case stateWizard:
		return m.handleWizardKey(msg)
	case stateSubmitting, stateContactSending, stateLoggingIn,
		stateLoadingDashboard, stateLoadingBookings, stateLoadingContacts:
		// A request is in flight; the triggering action stays disabled.
		return m, nil, true
	case stateComplete:
		return m.handleCompleteKey(msg)
	case stateContact:
		return m.handleContactKey(msg)
	case stateAdminLogin:
		return m.handleLoginKey(msg)
	case stateAdminDashboard:
		return m.handleDashboardKey(msg)
	case stateAdminBookings:
		return m.handleBookingsKey(msg)
	case stateAdminContacts:
		return m.handleContactsKey(msg)
	case stateError:
		if msg.String() == "esc" || msg.Type == tea.KeyEnter {
			m.state = m.lastState
			return m, nil, true
		}
		if msg.String() == "q" {
			return m, tea.Quit, true
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleHomeKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	}
	if msg.Type == tea.KeyEnter {
		item, ok := m.menuList.SelectedItem().(menuItem)
		if !ok {
			return m, nil, true
		}
		switch item.state {
		case stateWizard:
			return m.startWizard(m.seedService)
		case stateServices:
			m.serviceList.SetItems(buildServiceItems(""))
			m.state = stateServices
			return m, nil, true
		case stateContact:
			return m.startContact()
		case stateAdminLogin:
			return m.openAdmin()
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleServicesKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc":
		m.state = stateHome
		return m, nil, true
	}
	if msg.Type == tea.KeyEnter {
		item, ok := m.serviceList.SelectedItem().(serviceItem)
		if !ok {
			return m, nil, true
		}
		return m.startWizard(item.service.Id)
	}
	return m, nil, false
}

func (m appModel) handleCompleteKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "esc", "h":
		m.machine = nil
		m.state = stateHome
		return m, nil, true
	case "s":
		m.machine = nil
		m.serviceList.SetItems(buildServiceItems(""))
		m.state = stateServices
		return m, nil, true
	}
	return m, nil, true
}

// openAdmin goes straight to the dashboard when a stored session exists,
// otherwise to the login form.
func (m appModel) openAdmin() (appModel, tea.Cmd, bool) {
	if m.session.token != "" {
		m.state = stateLoadingDashboard
		return m, tea.Batch(m.fetchDashboardCmd(), m.spinner.Tick), true
	}
	return m.startLogin()
}

// forceLogout clears the session after a 401 and returns to the login form.
func (m *appModel) forceLogout(notice string) {
	m.session.token = ""
	_ = store.ClearSession()
	m.setNotice(notice, true)
	m.resetLoginInputs()
	m.state = stateAdminLogin
}

func (m appModel) handleAdminError(err error, from appState) (tea.Model, tea.Cmd) {
	if service.IsUnauthorized(err) {
		m.forceLogout("Session expired. Please sign in again.")
		return m, nil
	}
	return m, errWithOptionsCmd(err, fallbackFor(from))
}

func fallbackFor(state appState) appState {
	switch state {
	case stateAdminBookings, stateAdminContacts:
		return stateAdminDashboard
	default:
		return stateHome
	}
}

func (m *appModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *appModel) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateSubmitting, stateContactSending, stateLoggingIn,
		stateLoadingDashboard, stateLoadingBookings, stateLoadingContacts:
		return true
	}
	return false
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	m.menuList.SetSize(m.width, h)
	m.serviceList.SetSize(m.width, h)
	m.packageList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
	m.timeList.SetSize(m.width, h)
	m.addOnList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
	m.contactList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func errWithOptionsCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateSubmitting:
		return stateWizard
	case stateContactSending:
		return stateContact
	case stateLoggingIn:
		return stateAdminLogin
	case stateLoadingDashboard:
		return stateHome
	case stateLoadingBookings, stateLoadingContacts:
		return stateAdminDashboard
	case stateError:
		return stateHome
	default:
		return state
	}
}

func (m appModel) fetchDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.client.Dashboard(context.Background())
		return dashboardMsg{summary: summary, err: err}
	}
}

func (m appModel) fetchBookingsCmd(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Bookings(context.Background(), page, adminPageSize)
		return bookingsPageMsg{page: result, err: err}
	}
}

func (m appModel) fetchContactsCmd(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Contacts(context.Background(), page, adminPageSize)
		return contactsPageMsg{page: result, err: err}
	}
}

func (m appModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.client.Login(context.Background(), email, password)
		return loginMsg{token: token, err: err}
	}
}

func (m appModel) submitBookingCmd(req model.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		id, err := m.client.CreateBooking(context.Background(), req)
		return bookingSubmittedMsg{id: id, err: err}
	}
}

func (m appModel) submitContactCmd(req model.ContactRequest) tea.Cmd {
	return func() tea.Msg {
		err := m.client.SubmitContact(context.Background(), req)
		return contactSubmittedMsg{err: err}
	}
}
