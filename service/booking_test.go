package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shootic-cli/model"
)

func sampleBooking() model.BookingRequest {
	return model.BookingRequest{
		Service:     "Kids & Newborns",
		Package:     "Premium Package",
		Date:        "2026-09-12",
		Time:        "10:00 AM",
		AddOns:      []string{"Professional Prints Package"},
		FirstName:   "Asha",
		LastName:    "Rao",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Address:     "12 MG Road",
		City:        "Bengaluru",
		State:       "Karnataka",
		Pincode:     "560001",
		TotalAmount: 1798,
		Status:      "pending",
	}
}

func TestCreateBooking_OK(t *testing.T) {
	var received model.BookingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"booking":{"_id":"bk_42"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	id, err := client.CreateBooking(context.Background(), sampleBooking())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if id != "bk_42" {
		t.Fatalf("unexpected confirmation id: %q", id)
	}
	if received.Status != "pending" {
		t.Fatalf("expected pending status on the wire, got %q", received.Status)
	}
	if received.TotalAmount != 1798 {
		t.Fatalf("unexpected total on the wire: %d", received.TotalAmount)
	}
}

func TestCreateBooking_RejectedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"date unavailable"}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	if _, err := client.CreateBooking(context.Background(), sampleBooking()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreateBooking_RequiresResolvedNames(t *testing.T) {
	client := NewClient(nil)
	req := sampleBooking()
	req.Package = ""
	if _, err := client.CreateBooking(context.Background(), req); err == nil {
		t.Fatal("expected error for missing package name")
	}
}

func TestSubmitContact_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contact" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	err := client.SubmitContact(context.Background(), model.ContactRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Subject:   "Pricing",
		Message:   "Do you travel outside the city?",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
