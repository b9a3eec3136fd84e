package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"shootic-cli/model"
	"shootic-cli/wizard"
)

type contactField struct {
	name        string
	label       string
	placeholder string
	optional    bool
}

var contactFields = []contactField{
	{name: "firstName", label: "First Name", placeholder: "Priya"},
	{name: "lastName", label: "Last Name", placeholder: "Sharma"},
	{name: "email", label: "Email", placeholder: "priya@example.com"},
	{name: "phone", label: "Phone (optional)", placeholder: "+91 98765 43210", optional: true},
	{name: "subject", label: "Subject", placeholder: "Wedding shoot enquiry"},
	{name: "message", label: "Message", placeholder: "Tell us about your plans"},
}

func newContactInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(contactFields))
	for i, field := range contactFields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = 500
		in.Width = 40
		inputs[i] = in
	}
	return inputs
}

func (m appModel) startContact() (appModel, tea.Cmd, bool) {
	for i := range m.contactInputs {
		m.contactInputs[i].SetValue("")
		m.contactInputs[i].Blur()
	}
	m.fieldErrs = map[string]string{}
	m.clearNotice()
	m.contactFocus = 0
	m.contactInputs[0].Focus()
	m.state = stateContact
	return m, textinput.Blink, true
}

func (m appModel) focusContactInput(index int) (appModel, tea.Cmd, bool) {
	for i := range m.contactInputs {
		m.contactInputs[i].Blur()
	}
	m.contactFocus = index
	m.contactInputs[index].Focus()
	return m, textinput.Blink, true
}

func (m appModel) handleContactKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		m.state = stateHome
		return m, nil, true
	case "tab", "down":
		m.validateContactField(m.contactFocus)
		next := (m.contactFocus + 1) % len(m.contactInputs)
		return m.focusContactInput(next)
	case "shift+tab", "up":
		m.validateContactField(m.contactFocus)
		prev := m.contactFocus - 1
		if prev < 0 {
			prev = len(m.contactInputs) - 1
		}
		return m.focusContactInput(prev)
	case "ctrl+s":
		return m.triggerContactSubmit()
	}
	if msg.Type == tea.KeyEnter {
		m.validateContactField(m.contactFocus)
		if m.contactFocus < len(m.contactInputs)-1 {
			return m.focusContactInput(m.contactFocus + 1)
		}
		return m.triggerContactSubmit()
	}
	return m, nil, false
}

// validateContactField mirrors the wizard's inline validation, except the
// phone is optional here so an empty value is fine.
func (m *appModel) validateContactField(index int) {
	field := contactFields[index]
	value := m.contactInputs[index].Value()
	if field.optional && strings.TrimSpace(value) == "" {
		delete(m.fieldErrs, field.name)
		return
	}
	if err := wizard.ValidateField(field.name, value); err != nil {
		m.fieldErrs[field.name] = err.Error()
		return
	}
	delete(m.fieldErrs, field.name)
}

func (m appModel) triggerContactSubmit() (appModel, tea.Cmd, bool) {
	for i := range contactFields {
		m.validateContactField(i)
	}
	for i, field := range contactFields {
		if msg, ok := m.fieldErrs[field.name]; ok {
			m.setNotice(msg, true)
			return m.focusContactInput(i)
		}
	}

	req := model.ContactRequest{
		FirstName: strings.TrimSpace(m.contactInputs[0].Value()),
		LastName:  strings.TrimSpace(m.contactInputs[1].Value()),
		Email:     strings.TrimSpace(m.contactInputs[2].Value()),
		Phone:     strings.TrimSpace(m.contactInputs[3].Value()),
		Subject:   strings.TrimSpace(m.contactInputs[4].Value()),
		Message:   strings.TrimSpace(m.contactInputs[5].Value()),
	}
	m.clearNotice()
	m.state = stateContactSending
	return m, tea.Batch(m.submitContactCmd(req), m.spinner.Tick), true
}

func (m appModel) handleContactResult(msg contactSubmittedMsg) (tea.Model, tea.Cmd) {
	if m.state != stateContactSending {
		return m, nil
	}
	if msg.err != nil {
		m.state = stateContact
		m.setNotice("Could not send your message: "+msg.err.Error(), true)
		return m, nil
	}
	for i := range m.contactInputs {
		m.contactInputs[i].SetValue("")
	}
	m.contactFocus = 0
	m.state = stateContact
	m.setNotice("Message sent! We'll get back to you within 24 hours.", false)
	return m, nil
}
