package service

import (
	"context"
	"errors"
	"fmt"

	"shootic-cli/model"
)

// Login authenticates an admin and returns the bearer token for the session.
func (c *Client) Login(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}
	endpoint := fmt.Sprintf("%s/auth/login", c.baseURL)

	payload := map[string]string{"email": email, "password": password}
	var data struct {
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, endpoint, payload, &data); err != nil {
		return "", err
	}
	if data.Token == "" {
		return "", errors.New("login succeeded but no token was returned")
	}
	return data.Token, nil
}

// Dashboard fetches the admin overview, status breakdown and recent activity.
func (c *Client) Dashboard(ctx context.Context) (model.DashboardSummary, error) {
	endpoint := fmt.Sprintf("%s/admin/dashboard", c.baseURL)
	var summary model.DashboardSummary
	if err := c.getJSON(ctx, endpoint, &summary); err != nil {
		return model.DashboardSummary{}, err
	}
	return summary, nil
}

// Bookings fetches one page of bookings for the admin table.
func (c *Client) Bookings(ctx context.Context, page int, limit int) (model.BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/admin/bookings?page=%d&limit=%d", c.baseURL, page, limit)
	var result model.BookingPage
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return model.BookingPage{}, err
	}
	result.Pagination = normalizePagination(result.Pagination, page)
	return result, nil
}

// Contacts fetches one page of contact submissions.
func (c *Client) Contacts(ctx context.Context, page int, limit int) (model.ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/admin/contacts?page=%d&limit=%d", c.baseURL, page, limit)
	var result model.ContactPage
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return model.ContactPage{}, err
	}
	result.Pagination = normalizePagination(result.Pagination, page)
	return result, nil
}

// normalizePagination fills in the fields the paging keys depend on when the
// backend omits them: the current page falls back to the one requested and
// totalPages is floored at 1.
func normalizePagination(p model.Pagination, requested int) model.Pagination {
	if p.Page < 1 {
		p.Page = requested
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	return p
}
