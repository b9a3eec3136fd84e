package model

type DashboardOverview struct {
	TotalBookings int `json:"totalBookings"`
	TotalRevenue  int `json:"totalRevenue"`
	TotalContacts int `json:"totalContacts"`
}

type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type RecentActivity struct {
	Bookings []BookingRecord `json:"bookings"`
	Contacts []ContactRecord `json:"contacts"`
}

type DashboardSummary struct {
	Overview        DashboardOverview `json:"overview"`
	StatusBreakdown StatusBreakdown   `json:"statusBreakdown"`
	RecentActivity  RecentActivity    `json:"recentActivity"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type BookingPage struct {
	Bookings   []BookingRecord `json:"bookings"`
	Pagination Pagination      `json:"pagination"`
}

type ContactPage struct {
	Contacts   []ContactRecord `json:"contacts"`
	Pagination Pagination      `json:"pagination"`
}
