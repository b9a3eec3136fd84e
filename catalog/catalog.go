// Package catalog holds the static session catalog: services, packages,
// time slots and add-ons. The tables are fixed for the lifetime of the
// process; accessors return copies so callers cannot mutate them.
package catalog

import "shootic-cli/model"

var services = []model.Service{
	{
		Id:          "family",
		Name:        "Family Portraits",
		Description: "Perfect for capturing family memories",
		Duration:    "60-120 min",
		Price:       999,
	},
	{
		Id:          "couples",
		Name:        "Couples & Engagement",
		Description: "Romantic sessions for couples",
		Duration:    "60-90 min",
		Price:       1299,
	},
	{
		Id:          "kids",
		Name:        "Kids & Newborns",
		Description: "Gentle photography for little ones",
		Duration:    "45-90 min",
		Price:       999,
	},
	{
		Id:          "solo",
		Name:        "Solo Portraits",
		Description: "Professional headshots and personal branding",
		Duration:    "45-60 min",
		Price:       799,
	},
	{
		Id:          "product",
		Name:        "Product Photography",
		Description: "Professional product shots for business",
		Duration:    "60-90 min",
		Price:       1499,
	},
}

var packages = []model.Package{
	{
		Id:       "essential",
		Name:     "Essential Package",
		Price:    999,
		Duration: "60 min",
		Images:   "15",
		Features: []string{"Professional photographer", "Basic lighting", "15 edited images", "Online gallery"},
	},
	{
		Id:       "premium",
		Name:     "Premium Package",
		Price:    1299,
		Duration: "90 min",
		Images:   "30",
		Features: []string{"Senior photographer", "Enhanced lighting", "30 edited images", "Pre-shoot consultation", "Rush delivery"},
		Popular:  true,
	},
	{
		Id:       "deluxe",
		Name:     "Deluxe Package",
		Price:    1499,
		Duration: "120 min",
		Images:   "50+",
		Features: []string{"Master photographer", "Premium setup", "50+ edited images", "Custom backdrops", "Same-day preview", "Styling consultation"},
	},
}

// Availability is a fixture, not derived from a live calendar.
var timeSlots = []model.TimeSlot{
	{Time: "9:00 AM", Available: true},
	{Time: "10:00 AM", Available: true},
	{Time: "11:00 AM", Available: false},
	{Time: "12:00 PM", Available: true},
	{Time: "1:00 PM", Available: true},
	{Time: "2:00 PM", Available: true},
	{Time: "3:00 PM", Available: false},
	{Time: "4:00 PM", Available: true},
	{Time: "5:00 PM", Available: true},
}

var addOns = []model.AddOn{
	{
		Id:          "prints",
		Name:        "Professional Prints Package",
		Price:       499,
		Description: "High-quality prints of your favorite photos",
		Icon:        "🖼️",
	},
	{
		Id:          "album",
		Name:        "Custom Photo Album",
		Price:       799,
		Description: "Beautiful hardcover album with your photos",
		Icon:        "📚",
	},
	{
		Id:          "rush",
		Name:        "Rush Delivery (24 hours)",
		Price:       299,
		Description: "Get your photos delivered within 24 hours",
		Icon:        "⚡",
	},
	{
		Id:          "extra-time",
		Name:        "Extra 30 Minutes",
		Price:       499,
		Description: "Extend your session by 30 minutes",
		Icon:        "⏰",
	},
}

// Services returns the service table.
func Services() []model.Service {
	return append([]model.Service{}, services...)
}

// Packages returns the package table.
func Packages() []model.Package {
	out := make([]model.Package, len(packages))
	for i, pkg := range packages {
		out[i] = copyPackage(pkg)
	}
	return out
}

// copyPackage clones the feature slice too, so the table cannot be mutated
// through a returned value.
func copyPackage(pkg model.Package) model.Package {
	pkg.Features = append([]string{}, pkg.Features...)
	return pkg
}

// TimeSlots returns the time slot table.
func TimeSlots() []model.TimeSlot {
	return append([]model.TimeSlot{}, timeSlots...)
}

// AddOns returns the add-on table.
func AddOns() []model.AddOn {
	return append([]model.AddOn{}, addOns...)
}

// ServiceByID looks up a service by its id.
func ServiceByID(id string) (model.Service, bool) {
	for _, s := range services {
		if s.Id == id {
			return s, true
		}
	}
	return model.Service{}, false
}

// PackageByID looks up a package by its id.
func PackageByID(id string) (model.Package, bool) {
	for _, p := range packages {
		if p.Id == id {
			return copyPackage(p), true
		}
	}
	return model.Package{}, false
}

// AddOnByID looks up an add-on by its id.
func AddOnByID(id string) (model.AddOn, bool) {
	for _, a := range addOns {
		if a.Id == id {
			return a, true
		}
	}
	return model.AddOn{}, false
}

// TimeSlotByLabel looks up a time slot by its display time.
func TimeSlotByLabel(label string) (model.TimeSlot, bool) {
	for _, t := range timeSlots {
		if t.Time == label {
			return t, true
		}
	}
	return model.TimeSlot{}, false
}
