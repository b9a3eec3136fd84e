// Package wizard implements the booking flow: the in-progress draft, price
// derivation, per-step gating, field validation and the step state machine.
// It is pure state logic; the tui package drives it and the service package
// delivers its output.
package wizard

import (
	"shootic-cli/catalog"
	"shootic-cli/model"
)

// Draft is the session-scoped, mutable set of user selections. It is only
// ever touched from the single UI event flow, so it carries no locking.
type Draft struct {
	ServiceID string
	PackageID string
	Date      string
	Time      string
	AddOnIDs  []string

	FirstName string
	LastName  string
	Email     string
	Phone     string

	Address string
	City    string
	State   string
	Pincode string
	Notes   string
}

// ToggleAddOn adds the add-on if absent and removes it if present. Ids not
// in the catalog are ignored, so the selection can never hold an unknown id.
func (d *Draft) ToggleAddOn(id string) {
	if _, ok := catalog.AddOnByID(id); !ok {
		return
	}
	for i, existing := range d.AddOnIDs {
		if existing == id {
			d.AddOnIDs = append(d.AddOnIDs[:i], d.AddOnIDs[i+1:]...)
			return
		}
	}
	d.AddOnIDs = append(d.AddOnIDs, id)
}

// HasAddOn reports whether the add-on is currently selected.
func (d Draft) HasAddOn(id string) bool {
	for _, existing := range d.AddOnIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// Total derives the running total from the current selections. It is
// recomputed on demand and never stored.
func (d Draft) Total() int {
	return ComputeTotal(d.PackageID, d.AddOnIDs)
}

// ComputeTotal returns the selected package's price plus the price of every
// selected add-on found in the catalog. An empty package id contributes 0,
// as does any add-on id the catalog does not know.
func ComputeTotal(packageID string, addOnIDs []string) int {
	total := 0
	if pkg, ok := catalog.PackageByID(packageID); ok {
		total += pkg.Price
	}
	for _, id := range addOnIDs {
		if addOn, ok := catalog.AddOnByID(id); ok {
			total += addOn.Price
		}
	}
	return total
}

// BuildRequest assembles the outbound booking payload, resolving catalog ids
// to display names. Selections whose id no longer resolves become empty
// strings rather than errors; validation happens before this point.
func BuildRequest(d Draft) model.BookingRequest {
	serviceName := ""
	if service, ok := catalog.ServiceByID(d.ServiceID); ok {
		serviceName = service.Name
	}
	packageName := ""
	if pkg, ok := catalog.PackageByID(d.PackageID); ok {
		packageName = pkg.Name
	}
	var addOnNames []string
	for _, id := range d.AddOnIDs {
		if addOn, ok := catalog.AddOnByID(id); ok {
			addOnNames = append(addOnNames, addOn.Name)
		}
	}

	return model.BookingRequest{
		Service:     serviceName,
		Package:     packageName,
		Date:        d.Date,
		Time:        d.Time,
		AddOns:      addOnNames,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		Pincode:     d.Pincode,
		Notes:       d.Notes,
		TotalAmount: d.Total(),
		Status:      "pending",
	}
}
