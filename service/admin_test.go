package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"jwt-abc"}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	token, err := client.Login(context.Background(), "admin@shootic.com", "secret")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token != "jwt-abc" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	if _, err := client.Login(context.Background(), "admin@shootic.com", "secret"); err == nil {
		t.Fatal("expected error when no token is returned")
	}
}

func TestDashboard_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/dashboard" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "success": true,
  "data": {
    "overview": {"totalBookings": 12, "totalRevenue": 18000, "totalContacts": 4},
    "statusBreakdown": {"pending": 3},
    "recentActivity": {
      "bookings": [{"_id": "b1", "firstName": "Asha", "status": "pending", "totalAmount": 2097}],
      "contacts": [{"_id": "c1", "subject": "Pricing"}]
    }
  }
}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	summary, err := client.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if summary.Overview.TotalBookings != 12 {
		t.Fatalf("unexpected overview: %+v", summary.Overview)
	}
	if summary.StatusBreakdown.Pending != 3 {
		t.Fatalf("unexpected breakdown: %+v", summary.StatusBreakdown)
	}
	if len(summary.RecentActivity.Bookings) != 1 || summary.RecentActivity.Bookings[0].Id != "b1" {
		t.Fatalf("unexpected recent bookings: %+v", summary.RecentActivity.Bookings)
	}
}

func TestBookings_PaginationQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/bookings" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "page=3&limit=10" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "success": true,
  "data": {
    "bookings": [{"_id": "b7", "service": "Solo Portraits", "status": "confirmed"}],
    "pagination": {"page": 3, "limit": 10, "total": 25, "totalPages": 3}
  }
}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	page, err := client.Bookings(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(page.Bookings) != 1 || page.Bookings[0].Id != "b7" {
		t.Fatalf("unexpected bookings: %+v", page.Bookings)
	}
	if page.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}
}

func TestBookings_EmptyResultHasOnePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"bookings":[],"pagination":{}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	page, err := client.Bookings(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(page.Bookings) != 0 {
		t.Fatalf("expected empty page, got %+v", page.Bookings)
	}
	if page.Pagination.TotalPages != 1 {
		t.Fatalf("expected totalPages floor of 1, got %d", page.Pagination.TotalPages)
	}
}

func TestBookings_OmittedPageFallsBackToRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"bookings":[],"pagination":{"totalPages":5}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	page, err := client.Bookings(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Pagination.Page != 2 {
		t.Fatalf("expected page to fall back to the requested 2, got %d", page.Pagination.Page)
	}
}

func TestContacts_OmittedPageFallsBackToRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"contacts":[],"pagination":{"totalPages":4}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	page, err := client.Contacts(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Pagination.Page != 3 {
		t.Fatalf("expected page to fall back to the requested 3, got %d", page.Pagination.Page)
	}
}

func TestContacts_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/contacts" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.RawQuery != "page=1&limit=10" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "success": true,
  "data": {"contacts": [{"_id": "c2", "subject": "Wedding", "email": "x@y.com"}]}
}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	page, err := client.Contacts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(page.Contacts) != 1 || page.Contacts[0].Id != "c2" {
		t.Fatalf("unexpected contacts: %+v", page.Contacts)
	}
}
