package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"shootic-cli/catalog"
	"shootic-cli/model"
)

type menuItem struct {
	title string
	desc  string
	state appState
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return strings.ToLower(i.title) }

func buildMenuItems() []list.Item {
	return []list.Item{
		menuItem{title: "Book a Session", desc: "Five quick steps to your shoot", state: stateWizard},
		menuItem{title: "Our Services", desc: "Browse session types and pricing", state: stateServices},
		menuItem{title: "Contact Us", desc: "Send us a message", state: stateContact},
		menuItem{title: "Admin", desc: "Business dashboard (login required)", state: stateAdminLogin},
	}
}

type serviceItem struct {
	service  model.Service
	selected bool
}

func (i serviceItem) Title() string {
	if i.selected {
		return fmt.Sprintf("● %s", i.service.Name)
	}
	return i.service.Name
}

func (i serviceItem) Description() string {
	return fmt.Sprintf("%s • %s • ₹%d", i.service.Description, i.service.Duration, i.service.Price)
}

func (i serviceItem) FilterValue() string {
	return strings.ToLower(i.service.Name + " " + i.service.Description)
}

func buildServiceItems(selectedID string) []list.Item {
	services := catalog.Services()
	items := make([]list.Item, 0, len(services))
	for _, service := range services {
		items = append(items, serviceItem{service: service, selected: service.Id == selectedID})
	}
	return items
}

type packageItem struct {
	pkg      model.Package
	selected bool
}

func (i packageItem) Title() string {
	title := i.pkg.Name
	if i.pkg.Popular {
		title += " ★ Popular"
	}
	if i.selected {
		return fmt.Sprintf("● %s", title)
	}
	return title
}

func (i packageItem) Description() string {
	features := i.pkg.Features
	if len(features) > 3 {
		features = features[:3]
	}
	return fmt.Sprintf("₹%d • %s • %s images • %s", i.pkg.Price, i.pkg.Duration, i.pkg.Images, strings.Join(features, ", "))
}

func (i packageItem) FilterValue() string {
	return strings.ToLower(i.pkg.Name)
}

func buildPackageItems(selectedID string) []list.Item {
	packages := catalog.Packages()
	items := make([]list.Item, 0, len(packages))
	for _, pkg := range packages {
		items = append(items, packageItem{pkg: pkg, selected: pkg.Id == selectedID})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if isSameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time) []list.Item {
	start := truncateDate(base)
	items := make([]list.Item, 0, 14)
	for i := 0; i < 14; i++ {
		items = append(items, dateItem{date: start.AddDate(0, 0, i)})
	}
	return items
}

func isSameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type slotItem struct {
	slot     model.TimeSlot
	selected bool
}

func (i slotItem) Title() string {
	if i.selected {
		return fmt.Sprintf("● %s", i.slot.Time)
	}
	return i.slot.Time
}

func (i slotItem) Description() string {
	if !i.slot.Available {
		return "Unavailable"
	}
	return "Available"
}

func (i slotItem) FilterValue() string {
	return strings.ToLower(i.slot.Time)
}

func buildSlotItems(selected string) []list.Item {
	slots := catalog.TimeSlots()
	items := make([]list.Item, 0, len(slots))
	for _, slot := range slots {
		items = append(items, slotItem{slot: slot, selected: slot.Time == selected})
	}
	return items
}

type addOnItem struct {
	addOn    model.AddOn
	selected bool
}

func (i addOnItem) Title() string {
	if i.selected {
		return fmt.Sprintf("[x] %s %s", i.addOn.Icon, i.addOn.Name)
	}
	return fmt.Sprintf("[ ] %s %s", i.addOn.Icon, i.addOn.Name)
}

func (i addOnItem) Description() string {
	return fmt.Sprintf("₹%d • %s", i.addOn.Price, i.addOn.Description)
}

func (i addOnItem) FilterValue() string {
	return strings.ToLower(i.addOn.Name)
}

func buildAddOnItems(selected func(id string) bool) []list.Item {
	addOns := catalog.AddOns()
	items := make([]list.Item, 0, len(addOns))
	for _, addOn := range addOns {
		items = append(items, addOnItem{addOn: addOn, selected: selected(addOn.Id)})
	}
	return items
}

type bookingRowItem struct {
	booking model.BookingRecord
}

func (i bookingRowItem) Title() string {
	name := strings.TrimSpace(i.booking.FirstName + " " + i.booking.LastName)
	if name == "" {
		name = i.booking.Email
	}
	return fmt.Sprintf("%s • %s", name, i.booking.Service)
}

func (i bookingRowItem) Description() string {
	return fmt.Sprintf("%s %s • %s • ₹%d • %s", i.booking.Date, i.booking.Time, i.booking.Package, i.booking.TotalAmount, i.booking.Status)
}

func (i bookingRowItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.booking.FirstName, i.booking.LastName, i.booking.Email, i.booking.Service, i.booking.Status}, " "))
}

func buildBookingRows(bookings []model.BookingRecord) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, bookingRowItem{booking: booking})
	}
	return items
}

type contactRowItem struct {
	contact model.ContactRecord
}

func (i contactRowItem) Title() string {
	name := strings.TrimSpace(i.contact.FirstName + " " + i.contact.LastName)
	if name == "" {
		name = i.contact.Email
	}
	return fmt.Sprintf("%s • %s", name, i.contact.Subject)
}

func (i contactRowItem) Description() string {
	message := i.contact.Message
	if len(message) > 72 {
		message = message[:72] + "…"
	}
	return message
}

func (i contactRowItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.contact.FirstName, i.contact.LastName, i.contact.Email, i.contact.Subject}, " "))
}

func buildContactRows(contacts []model.ContactRecord) []list.Item {
	items := make([]list.Item, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, contactRowItem{contact: contact})
	}
	return items
}
