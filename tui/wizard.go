package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"shootic-cli/store"
	"shootic-cli/wizard"
)

// wizField binds a text input slot to its draft field and validation name.
type wizField struct {
	name        string
	label       string
	placeholder string
	apply       func(d *wizard.Draft, v string)
	value       func(d wizard.Draft) string
}

var wizFields = []wizField{
	{
		name: "firstName", label: "First Name", placeholder: "Priya",
		apply: func(d *wizard.Draft, v string) { d.FirstName = v },
		value: func(d wizard.Draft) string { return d.FirstName },
	},
	{
		name: "lastName", label: "Last Name", placeholder: "Sharma",
		apply: func(d *wizard.Draft, v string) { d.LastName = v },
		value: func(d wizard.Draft) string { return d.LastName },
	},
	{
		name: "email", label: "Email", placeholder: "priya@example.com",
		apply: func(d *wizard.Draft, v string) { d.Email = v },
		value: func(d wizard.Draft) string { return d.Email },
	},
	{
		name: "phone", label: "Phone", placeholder: "+91 98765 43210",
		apply: func(d *wizard.Draft, v string) { d.Phone = v },
		value: func(d wizard.Draft) string { return d.Phone },
	},
	{
		name: "address", label: "Address", placeholder: "Flat 12, Rose Apartments",
		apply: func(d *wizard.Draft, v string) { d.Address = v },
		value: func(d wizard.Draft) string { return d.Address },
	},
	{
		name: "city", label: "City", placeholder: "Mumbai",
		apply: func(d *wizard.Draft, v string) { d.City = v },
		value: func(d wizard.Draft) string { return d.City },
	},
	{
		name: "state", label: "State", placeholder: "Maharashtra",
		apply: func(d *wizard.Draft, v string) { d.State = v },
		value: func(d wizard.Draft) string { return d.State },
	},
	{
		name: "pincode", label: "Pincode", placeholder: "400001",
		apply: func(d *wizard.Draft, v string) { d.Pincode = v },
		value: func(d wizard.Draft) string { return d.Pincode },
	},
	{
		name: "notes", label: "Notes (optional)", placeholder: "Anything we should know?",
		apply: func(d *wizard.Draft, v string) { d.Notes = v },
		value: func(d wizard.Draft) string { return d.Notes },
	},
}

func newWizardInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(wizFields))
	for i, field := range wizFields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = 120
		in.Width = 40
		inputs[i] = in
	}
	return inputs
}

// wizFieldRange returns the input index range shown on the given step.
func wizFieldRange(step wizard.Step) (int, int) {
	if step == wizard.StepContact {
		return 0, 4
	}
	return 4, len(wizFields)
}

func (m appModel) startWizard(serviceID string) (appModel, tea.Cmd, bool) {
	m.machine = wizard.NewMachine(serviceID)
	m.fieldErrs = map[string]string{}
	m.confirmationID = ""
	m.wizPane = 0
	m.wizFocus = 0
	m.clearNotice()

	if contact, ok, err := store.LoadContact(); err == nil && ok {
		_ = m.machine.Edit(func(d *wizard.Draft) {
			d.FirstName = contact.FirstName
			d.LastName = contact.LastName
			d.Email = contact.Email
			d.Phone = contact.Phone
			d.Address = contact.Address
			d.City = contact.City
			d.State = contact.State
			d.Pincode = contact.Pincode
		})
	}

	draft := m.machine.Draft()
	for i, field := range wizFields {
		m.wizInputs[i].SetValue(field.value(draft))
		m.wizInputs[i].Blur()
	}
	if draft.ServiceID != "" {
		m.wizPane = 1
	}
	m.syncWizardLists()
	m.state = stateWizard
	return m, textinput.Blink, true
}

// syncWizardLists rebuilds the selection lists so the ● and [x] markers
// track the draft.
func (m *appModel) syncWizardLists() {
	draft := m.machine.Draft()
	m.serviceList.SetItems(buildServiceItems(draft.ServiceID))
	m.packageList.SetItems(buildPackageItems(draft.PackageID))
	if len(m.dateList.Items()) == 0 {
		m.dateList.SetItems(buildDateItems(time.Now()))
	}
	m.timeList.SetItems(buildSlotItems(draft.Time))
	keep := m.addOnList.Index()
	m.addOnList.SetItems(buildAddOnItems(draft.HasAddOn))
	if keep >= 0 && keep < len(m.addOnList.Items()) {
		m.addOnList.Select(keep)
	}
}

func (m appModel) handleWizardKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	step := m.machine.Step()
	key := msg.String()

	if key == "esc" {
		return m.wizardBack()
	}
	if key == "ctrl+s" && step == wizard.StepAddress {
		return m.triggerSubmit()
	}

	switch step {
	case wizard.StepService:
		return m.handleStepService(msg)
	case wizard.StepSchedule:
		return m.handleStepSchedule(msg)
	case wizard.StepAddOns:
		return m.handleStepAddOns(msg)
	case wizard.StepContact, wizard.StepAddress:
		return m.handleStepInputs(msg)
	}
	return m, nil, false
}

// wizardBack moves one pane or one step backwards; on the first pane of the
// first step the draft is abandoned and the app returns home.
func (m appModel) wizardBack() (appModel, tea.Cmd, bool) {
	m.clearNotice()
	if m.wizPane > 0 {
		m.wizPane = 0
		return m, nil, true
	}
	if err := m.machine.Prev(); err != nil {
		m.machine = nil
		m.state = stateHome
		return m, nil, true
	}
	return m.enterStep()
}

// enterStep resets per-step focus after step navigation.
func (m appModel) enterStep() (appModel, tea.Cmd, bool) {
	m.wizPane = 0
	step := m.machine.Step()
	switch step {
	case wizard.StepContact, wizard.StepAddress:
		start, _ := wizFieldRange(step)
		return m.focusWizInput(start)
	}
	for i := range m.wizInputs {
		m.wizInputs[i].Blur()
	}
	return m, nil, true
}

func (m appModel) focusWizInput(index int) (appModel, tea.Cmd, bool) {
	for i := range m.wizInputs {
		m.wizInputs[i].Blur()
	}
	m.wizFocus = index
	m.wizInputs[index].Focus()
	return m, textinput.Blink, true
}

func (m appModel) tryNext() (appModel, tea.Cmd, bool) {
	if err := m.machine.Next(); err != nil {
		m.setNotice("Complete this step before continuing.", true)
		return m, nil, true
	}
	m.clearNotice()
	return m.enterStep()
}

func (m appModel) handleStepService(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "tab":
		m.wizPane = 1 - m.wizPane
		return m, nil, true
	case "n":
		return m.tryNext()
	}
	if msg.Type != tea.KeyEnter {
		return m, nil, false
	}
	if m.wizPane == 0 {
		item, ok := m.serviceList.SelectedItem().(serviceItem)
		if !ok {
			return m, nil, true
		}
		_ = m.machine.Edit(func(d *wizard.Draft) { d.ServiceID = item.service.Id })
		m.syncWizardLists()
		m.wizPane = 1
		m.clearNotice()
		return m, nil, true
	}
	item, ok := m.packageList.SelectedItem().(packageItem)
	if !ok {
		return m, nil, true
	}
	_ = m.machine.Edit(func(d *wizard.Draft) { d.PackageID = item.pkg.Id })
	m.syncWizardLists()
	return m.tryNext()
}

func (m appModel) handleStepSchedule(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "tab":
		m.wizPane = 1 - m.wizPane
		return m, nil, true
	case "n":
		return m.tryNext()
	}
	if msg.Type != tea.KeyEnter {
		return m, nil, false
	}
	if m.wizPane == 0 {
		item, ok := m.dateList.SelectedItem().(dateItem)
		if !ok {
			return m, nil, true
		}
		_ = m.machine.Edit(func(d *wizard.Draft) { d.Date = item.date.Format(time.DateOnly) })
		m.wizPane = 1
		m.clearNotice()
		return m, nil, true
	}
	item, ok := m.timeList.SelectedItem().(slotItem)
	if !ok {
		return m, nil, true
	}
	if !item.slot.Available {
		m.setNotice("That time slot is unavailable. Pick another.", true)
		return m, nil, true
	}
	_ = m.machine.Edit(func(d *wizard.Draft) { d.Time = item.slot.Time })
	m.syncWizardLists()
	return m.tryNext()
}

func (m appModel) handleStepAddOns(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "n":
		return m.tryNext()
	case " ", "x":
		return m.toggleAddOnUnderCursor()
	}
	if msg.Type == tea.KeyEnter {
		return m.toggleAddOnUnderCursor()
	}
	return m, nil, false
}

func (m appModel) toggleAddOnUnderCursor() (appModel, tea.Cmd, bool) {
	item, ok := m.addOnList.SelectedItem().(addOnItem)
	if !ok {
		return m, nil, true
	}
	_ = m.machine.Edit(func(d *wizard.Draft) { d.ToggleAddOn(item.addOn.Id) })
	m.syncWizardLists()
	return m, nil, true
}

func (m appModel) handleStepInputs(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	step := m.machine.Step()
	start, end := wizFieldRange(step)
	if m.wizFocus < start || m.wizFocus >= end {
		m.wizFocus = start
	}

	switch msg.String() {
	case "tab", "down":
		m.validateWizField(m.wizFocus)
		next := m.wizFocus + 1
		if next >= end {
			next = start
		}
		return m.focusWizInput(next)
	case "shift+tab", "up":
		m.validateWizField(m.wizFocus)
		prev := m.wizFocus - 1
		if prev < start {
			prev = end - 1
		}
		return m.focusWizInput(prev)
	}

	if msg.Type == tea.KeyEnter {
		m.validateWizField(m.wizFocus)
		if m.wizFocus < end-1 {
			return m.focusWizInput(m.wizFocus + 1)
		}
		if step == wizard.StepAddress {
			return m.triggerSubmit()
		}
		return m.tryNext()
	}
	return m, nil, false
}

// validateWizField refreshes the inline error for one field. Empty optional
// fields clear their error; the notes field has no rule at all.
func (m *appModel) validateWizField(index int) {
	field := wizFields[index]
	if field.name == "notes" {
		return
	}
	value := m.wizInputs[index].Value()
	if err := wizard.ValidateField(field.name, value); err != nil {
		m.fieldErrs[field.name] = err.Error()
		return
	}
	delete(m.fieldErrs, field.name)
}

func (m appModel) triggerSubmit() (appModel, tea.Cmd, bool) {
	req, err := m.machine.BeginSubmit()
	if err != nil {
		var fieldErr *wizard.FieldError
		switch {
		case errors.As(err, &fieldErr):
			m.fieldErrs[fieldErr.Field] = fieldErr.Message
			m.setNotice(fieldErr.Message, true)
			if idx := wizFieldIndex(fieldErr.Field); idx >= 0 {
				start, end := wizFieldRange(m.machine.Step())
				if idx >= start && idx < end {
					return m.focusWizInput(idx)
				}
			}
		case errors.Is(err, wizard.ErrStepIncomplete):
			m.setNotice("Please fill in all required fields.", true)
		case errors.Is(err, wizard.ErrSubmitting):
			// Already in flight; ignore the extra trigger.
		default:
			m.setNotice(err.Error(), true)
		}
		return m, nil, true
	}
	m.clearNotice()
	m.state = stateSubmitting
	return m, tea.Batch(m.submitBookingCmd(req), m.spinner.Tick), true
}

func wizFieldIndex(name string) int {
	for i, field := range wizFields {
		if field.name == name {
			return i
		}
	}
	return -1
}

func (m appModel) handleBookingResult(msg bookingSubmittedMsg) (tea.Model, tea.Cmd) {
	if m.state != stateSubmitting {
		return m, nil
	}
	if msg.err != nil {
		m.machine.FailSubmit()
		m.state = stateWizard
		m.setNotice("Booking failed: "+msg.err.Error()+" — press enter to retry.", true)
		return m, nil
	}
	m.machine.CompleteSubmit()
	m.confirmationID = msg.id
	draft := m.machine.Draft()
	_ = store.RememberContact(store.ContactDetails{
		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Address:   draft.Address,
		City:      draft.City,
		State:     draft.State,
		Pincode:   draft.Pincode,
	})
	m.clearNotice()
	m.state = stateComplete
	return m, nil
}

func (m appModel) updateWizardComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.machine.Step() {
	case wizard.StepService:
		if m.wizPane == 0 {
			m.serviceList, cmd = m.serviceList.Update(msg)
		} else {
			m.packageList, cmd = m.packageList.Update(msg)
		}
	case wizard.StepSchedule:
		if m.wizPane == 0 {
			m.dateList, cmd = m.dateList.Update(msg)
		} else {
			m.timeList, cmd = m.timeList.Update(msg)
		}
	case wizard.StepAddOns:
		m.addOnList, cmd = m.addOnList.Update(msg)
	case wizard.StepContact, wizard.StepAddress:
		i := m.wizFocus
		m.wizInputs[i], cmd = m.wizInputs[i].Update(msg)
		value := m.wizInputs[i].Value()
		_ = m.machine.Edit(func(d *wizard.Draft) { wizFields[i].apply(d, value) })
	}
	return m, cmd
}
