package wizard

import (
	"fmt"
	"regexp"
	"strings"
)

// Step identifies one of the five wizard screens.
type Step int

const (
	StepService  Step = 1 // service and package selection
	StepSchedule Step = 2 // date and time
	StepAddOns   Step = 3 // optional add-ons
	StepContact  Step = 4 // contact details
	StepAddress  Step = 5 // shoot address
)

const (
	FirstStep = StepService
	LastStep  = StepAddress
)

// CanAdvance reports whether forward navigation past the given step is
// permitted for the draft's current values. Gating is presence-only; format
// checks live in the field schema and block submission, not navigation.
func CanAdvance(step Step, d Draft) bool {
	switch step {
	case StepService:
		return d.ServiceID != "" && d.PackageID != ""
	case StepSchedule:
		return d.Date != "" && d.Time != ""
	case StepAddOns:
		return true
	case StepContact:
		return filled(d.FirstName, d.LastName, d.Email, d.Phone)
	case StepAddress:
		return filled(d.Address, d.City, d.State, d.Pincode)
	default:
		return false
	}
}

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// FieldError reports a single field failing its schema rule; the message is
// shown inline next to the input.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type fieldRule struct {
	required string // error message when empty; "" means optional
	pattern  *regexp.Regexp
	message  string // error message when the pattern fails
}

// Patterns match the hosted site: a 10-digit Indian mobile number with an
// optional country prefix, and a 6-digit PIN code.
var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^(\+91[-\s]?)?[0]?(91)?[6789]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

var fieldRules = map[string]fieldRule{
	"firstName": {required: "First name is required"},
	"lastName":  {required: "Last name is required"},
	"email": {
		required: "Email is required",
		pattern:  emailPattern,
		message:  "Please enter a valid email address",
	},
	"phone": {
		required: "Phone number is required",
		pattern:  phonePattern,
		message:  "Please enter a valid Indian phone number",
	},
	"address": {required: "Address is required"},
	"city":    {required: "City is required"},
	"state":   {required: "State is required"},
	"pincode": {
		required: "PIN code is required",
		pattern:  pincodePattern,
		message:  "PIN code must be 6 digits",
	},
	"subject": {required: "Subject is required"},
	"message": {required: "Message is required"},
	"notes":   {},
}

// ValidateField checks a single value against the field schema. Unknown
// field names pass; optional fields pass when empty.
func ValidateField(name, value string) error {
	rule, ok := fieldRules[name]
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		if rule.required == "" {
			return nil
		}
		return &FieldError{Field: name, Message: rule.required}
	}
	if rule.pattern != nil && !rule.pattern.MatchString(value) {
		return &FieldError{Field: name, Message: rule.message}
	}
	return nil
}

// validateSubmission runs every contact and address field through the
// schema. It is the final gate before a booking request leaves the client.
func validateSubmission(d Draft) error {
	checks := []struct {
		name  string
		value string
	}{
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"state", d.State},
		{"pincode", d.Pincode},
	}
	for _, check := range checks {
		if err := ValidateField(check.name, check.value); err != nil {
			return err
		}
	}
	return nil
}
