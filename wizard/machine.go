package wizard

import (
	"errors"

	"shootic-cli/catalog"
	"shootic-cli/model"
)

// Phase is the machine's position outside plain step editing.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseComplete
)

var (
	// ErrStepIncomplete means the current step's required fields are not
	// all present.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrNotLastStep means submission was attempted before the final step.
	ErrNotLastStep = errors.New("submission is only possible from the last step")
	// ErrSubmitting means a submission is already in flight.
	ErrSubmitting = errors.New("a submission is already in progress")
	// ErrComplete means the booking was accepted and the draft is frozen.
	ErrComplete = errors.New("booking is complete")
	// ErrFirstStep means backward navigation was attempted from step 1.
	ErrFirstStep = errors.New("already on the first step")
)

// Machine owns the wizard's current step, phase and draft, and gates every
// transition. A fresh Machine is the only way out of the Complete phase.
type Machine struct {
	step  Step
	phase Phase
	draft Draft
}

// NewMachine returns a machine on step 1 with an empty draft, optionally
// pre-seeded with a service id. An id the catalog does not know is ignored.
func NewMachine(serviceID string) *Machine {
	m := &Machine{step: FirstStep}
	if _, ok := catalog.ServiceByID(serviceID); ok {
		m.draft.ServiceID = serviceID
	}
	return m
}

// Step returns the current step.
func (m *Machine) Step() Step { return m.step }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Draft returns a copy of the draft for display.
func (m *Machine) Draft() Draft {
	d := m.draft
	d.AddOnIDs = append([]string{}, m.draft.AddOnIDs...)
	return d
}

// Edit applies a mutation to the draft. Mutations are rejected once a
// submission is in flight or complete, so the terminal states stay frozen.
func (m *Machine) Edit(fn func(*Draft)) error {
	switch m.phase {
	case PhaseSubmitting:
		return ErrSubmitting
	case PhaseComplete:
		return ErrComplete
	}
	fn(&m.draft)
	return nil
}

// Next advances to the following step if the current one passes gating.
func (m *Machine) Next() error {
	if m.phase != PhaseEditing {
		return m.phaseErr()
	}
	if m.step >= LastStep {
		return ErrStepIncomplete
	}
	if !CanAdvance(m.step, m.draft) {
		return ErrStepIncomplete
	}
	m.step++
	return nil
}

// Prev moves back one step. Backward navigation is never gated.
func (m *Machine) Prev() error {
	if m.phase != PhaseEditing {
		return m.phaseErr()
	}
	if m.step <= FirstStep {
		return ErrFirstStep
	}
	m.step--
	return nil
}

// BeginSubmit validates the full draft and, when it passes, freezes the
// machine in the Submitting phase and returns the assembled payload. No
// network call may be issued when an error is returned.
func (m *Machine) BeginSubmit() (model.BookingRequest, error) {
	if m.phase != PhaseEditing {
		return model.BookingRequest{}, m.phaseErr()
	}
	if m.step != LastStep {
		return model.BookingRequest{}, ErrNotLastStep
	}
	if !CanAdvance(LastStep, m.draft) {
		return model.BookingRequest{}, ErrStepIncomplete
	}
	if err := validateSubmission(m.draft); err != nil {
		return model.BookingRequest{}, err
	}
	m.phase = PhaseSubmitting
	return BuildRequest(m.draft), nil
}

// FailSubmit records a failed submission: the draft is untouched and the
// machine returns to editing on the last step so the user can retry.
func (m *Machine) FailSubmit() {
	if m.phase == PhaseSubmitting {
		m.phase = PhaseEditing
	}
}

// CompleteSubmit records an accepted submission. The machine is terminal
// from here on.
func (m *Machine) CompleteSubmit() {
	if m.phase == PhaseSubmitting {
		m.phase = PhaseComplete
	}
}

func (m *Machine) phaseErr() error {
	if m.phase == PhaseComplete {
		return ErrComplete
	}
	return ErrSubmitting
}
