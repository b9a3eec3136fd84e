package service

import (
	"context"
	"errors"
	"fmt"

	"shootic-cli/model"
)

// CreateBooking submits an assembled booking request. On success it returns
// the confirmation id when the backend includes one; an empty id with a nil
// error still means the booking was accepted.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (string, error) {
	if req.Service == "" || req.Package == "" {
		return "", errors.New("service and package are required")
	}
	endpoint := fmt.Sprintf("%s/bookings", c.baseURL)

	var data struct {
		Id      string `json:"_id"`
		Booking struct {
			Id string `json:"_id"`
		} `json:"booking"`
	}
	if err := c.postJSON(ctx, endpoint, req, &data); err != nil {
		return "", err
	}
	if data.Id != "" {
		return data.Id, nil
	}
	return data.Booking.Id, nil
}

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(ctx context.Context, req model.ContactRequest) error {
	if req.Subject == "" || req.Message == "" {
		return errors.New("subject and message are required")
	}
	endpoint := fmt.Sprintf("%s/contact", c.baseURL)
	return c.postJSON(ctx, endpoint, req, nil)
}
