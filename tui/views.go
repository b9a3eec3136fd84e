package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"shootic-cli/catalog"
	"shootic-cli/wizard"
)

func catalogService(id string) (string, bool) {
	service, ok := catalog.ServiceByID(id)
	return service.Name, ok
}

func catalogPackage(id string) (string, bool) {
	pkg, ok := catalog.PackageByID(id)
	return pkg.Name, ok
}

var (
	errTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

func hint(text string) string {
	return hintStyle.Render(text)
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateHome:
		return header + "\n\n" + m.menuList.View()
	case stateServices:
		return header + "\n\n" + m.serviceList.View()
	case stateWizard:
		return header + "\n\n" + m.wizardView()
	case stateSubmitting, stateContactSending, stateLoggingIn,
		stateLoadingDashboard, stateLoadingBookings, stateLoadingContacts:
		return header + "\n\n" + m.loadingView()
	case stateComplete:
		return header + "\n\n" + m.completeView()
	case stateContact:
		return header + "\n\n" + m.contactView()
	case stateAdminLogin:
		return header + "\n\n" + m.loginView()
	case stateAdminDashboard:
		return header + "\n\n" + m.dashboardView()
	case stateAdminBookings:
		return header + "\n\n" + m.bookingList.View() + "\n" + m.pageLine(m.bookingsPage.Pagination.Page, m.bookingsPage.Pagination.TotalPages, m.bookingsPage.Pagination.Total)
	case stateAdminContacts:
		return header + "\n\n" + m.contactList.View() + "\n" + m.pageLine(m.contactsPage.Pagination.Page, m.contactsPage.Pagination.TotalPages, m.contactsPage.Pagination.Total)
	case stateError:
		return header + "\n\n" + errTextStyle.Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Shootic")
	sub := []string{}
	if m.state == stateWizard || m.state == stateSubmitting {
		draft := m.machine.Draft()
		sub = append(sub, fmt.Sprintf("Step %d of %d", m.machine.Step(), wizard.LastStep))
		if draft.PackageID != "" {
			sub = append(sub, fmt.Sprintf("Total: ₹%d", draft.Total()))
		}
	}
	if m.state == stateAdminDashboard || m.state == stateAdminBookings || m.state == stateAdminContacts {
		sub = append(sub, "Admin")
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + hint(meta)
	}

	noticeLine := ""
	if m.notice != "" {
		style := okTextStyle
		if m.noticeErr {
			style = errTextStyle
		}
		noticeLine = "\n" + style.Render(m.notice)
	}

	return title + meta + noticeLine + "\n" + hint(m.hints())
}

func (m appModel) hints() string {
	switch m.state {
	case stateHome:
		return "ctrl+c quit • enter select"
	case stateServices:
		return "ctrl+c quit • esc back • enter book this service"
	case stateWizard:
		switch m.machine.Step() {
		case wizard.StepService:
			return "ctrl+c quit • esc back • tab switch pane • enter select • n next"
		case wizard.StepSchedule:
			return "ctrl+c quit • esc back • tab switch pane • enter select • n next"
		case wizard.StepAddOns:
			return "ctrl+c quit • esc back • enter/x toggle add-on • n next"
		case wizard.StepContact:
			return "ctrl+c quit • esc back • tab next field • enter advance"
		default:
			return "ctrl+c quit • esc back • tab next field • ctrl+s submit booking"
		}
	case stateComplete:
		return "h home • s book another service • ctrl+c quit"
	case stateContact:
		return "ctrl+c quit • esc back • tab next field • ctrl+s send"
	case stateAdminLogin:
		return "ctrl+c quit • esc back • tab switch field • enter sign in"
	case stateAdminDashboard:
		return "b bookings • c contacts • r refresh • l sign out • esc home"
	case stateAdminBookings:
		return "←/→ page • c contacts • esc dashboard"
	case stateAdminContacts:
		return "←/→ page • b bookings • esc dashboard"
	default:
		return "ctrl+c quit • esc back"
	}
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateSubmitting:
		title = "Submitting your booking"
	case stateContactSending:
		title = "Sending your message"
	case stateLoggingIn:
		title = "Signing in"
	case stateLoadingDashboard:
		title = "Loading dashboard"
	case stateLoadingBookings:
		title = "Loading bookings"
	case stateLoadingContacts:
		title = "Loading contact messages"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Talking to the Shootic API..."))
}

func (m appModel) wizardView() string {
	switch m.machine.Step() {
	case wizard.StepService:
		if m.wizPane == 0 {
			return m.serviceList.View() + "\n" + m.summaryLine()
		}
		return m.packageList.View() + "\n" + m.summaryLine()
	case wizard.StepSchedule:
		if m.wizPane == 0 {
			return m.dateList.View() + "\n" + m.summaryLine()
		}
		return m.timeList.View() + "\n" + m.summaryLine()
	case wizard.StepAddOns:
		return m.addOnList.View() + "\n" + m.summaryLine()
	case wizard.StepContact:
		return labelStyle.Render("Your Details") + "\n\n" + m.wizardFormView() + "\n" + m.summaryLine()
	default:
		return labelStyle.Render("Shoot Address") + "\n\n" + m.wizardFormView() + "\n" + m.summaryLine()
	}
}

func (m appModel) wizardFormView() string {
	start, end := wizFieldRange(m.machine.Step())
	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, renderField(wizFields[i].label, m.wizInputs[i], m.fieldErrs[wizFields[i].name]))
	}
	return strings.Join(lines, "\n")
}

// summaryLine shows the running selection under every wizard step.
func (m appModel) summaryLine() string {
	draft := m.machine.Draft()
	parts := []string{}
	if service, ok := catalogService(draft.ServiceID); ok {
		parts = append(parts, service)
	}
	if pkg, ok := catalogPackage(draft.PackageID); ok {
		parts = append(parts, pkg)
	}
	if draft.Date != "" {
		parts = append(parts, draft.Date)
	}
	if draft.Time != "" {
		parts = append(parts, draft.Time)
	}
	if len(draft.AddOnIDs) > 0 {
		parts = append(parts, fmt.Sprintf("%d add-on(s)", len(draft.AddOnIDs)))
	}
	if len(parts) == 0 {
		return ""
	}
	line := strings.Join(parts, " • ")
	if draft.PackageID != "" {
		line += fmt.Sprintf(" • ₹%d", draft.Total())
	}
	return "\n" + hint(line)
}

func renderField(label string, input textinput.Model, fieldErr string) string {
	line := labelStyle.Render(label) + "\n" + input.View()
	if fieldErr != "" {
		line += "\n" + errTextStyle.Render(fieldErr)
	}
	return line + "\n"
}

func (m appModel) completeView() string {
	draft := m.machine.Draft()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("63")).
		Padding(0, 2).
		Render("Booking Confirmed")

	lines := []string{
		title,
		"",
		okTextStyle.Render("Thanks " + draft.FirstName + "! Your session is booked."),
	}
	if m.confirmationID != "" {
		lines = append(lines, hint("Reference: "+m.confirmationID))
	}
	service, _ := catalogService(draft.ServiceID)
	pkg, _ := catalogPackage(draft.PackageID)
	lines = append(lines, "", fmt.Sprintf("%s • %s • %s %s", service, pkg, draft.Date, draft.Time))
	lines = append(lines,
		fmt.Sprintf("Total: ₹%d", draft.Total()),
		"",
		hint("A confirmation email is on its way to "+draft.Email+"."),
	)

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		MarginTop(1).
		Render(strings.Join(lines, "\n"))
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}

func (m appModel) contactView() string {
	lines := make([]string, 0, len(contactFields)*2)
	for i, field := range contactFields {
		lines = append(lines, renderField(field.label, m.contactInputs[i], m.fieldErrs[field.name]))
	}
	return labelStyle.Render("Contact Us") + "\n\n" + strings.Join(lines, "\n")
}

func (m appModel) loginView() string {
	return labelStyle.Render("Admin Sign In") + "\n\n" +
		renderField("Email", m.loginInputs[0], "") + "\n" +
		renderField("Password", m.loginInputs[1], "")
}

func (m appModel) dashboardView() string {
	overview := m.dashboard.Overview
	breakdown := m.dashboard.StatusBreakdown
	recent := m.dashboard.RecentActivity

	lines := []string{
		labelStyle.Render("Overview"),
		fmt.Sprintf("  Bookings: %d   Revenue: ₹%d   Messages: %d", overview.TotalBookings, overview.TotalRevenue, overview.TotalContacts),
		"",
		labelStyle.Render("Booking Status"),
		fmt.Sprintf("  Pending: %d   Confirmed: %d   Completed: %d   Cancelled: %d",
			breakdown.Pending, breakdown.Confirmed, breakdown.Completed, breakdown.Cancelled),
	}

	if len(recent.Bookings) > 0 {
		lines = append(lines, "", labelStyle.Render("Recent Bookings"))
		for _, booking := range recent.Bookings {
			lines = append(lines, "  "+bookingRowItem{booking: booking}.Title()+hint(" • "+booking.Date+" "+booking.Time))
		}
	}
	if len(recent.Contacts) > 0 {
		lines = append(lines, "", labelStyle.Render("Recent Messages"))
		for _, contact := range recent.Contacts {
			lines = append(lines, "  "+contactRowItem{contact: contact}.Title())
		}
	}
	return strings.Join(lines, "\n")
}

func (m appModel) pageLine(page, totalPages, total int) string {
	return hint(fmt.Sprintf("Page %d of %d • %d total", page, totalPages, total))
}
