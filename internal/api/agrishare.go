// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"path/filepath"
	"strconv"
)

// =============================================================================
// AGRI-SHARE OPERATIONS
// =============================================================================

// CreateEquipment publishes a new rental listing. Fields go as multipart form
// values with the images attached as file parts, matching the upload endpoint.
func (c *Client) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	var out Equipment

	r := c.request(ctx).
		SetMultipartFormData(map[string]string{
			"name":          req.Name,
			"description":   req.Description,
			"price_per_day": strconv.FormatFloat(req.PricePerDay, 'f', 2, 64),
			"pincode":       req.Pincode,
			"owner_id":      req.OwnerID,
			"contact_name":  req.ContactName,
			"contact_phone": req.ContactPhone,
		}).
		SetResult(&out)
	if req.ContactWhatsapp != "" {
		r.SetMultipartFormData(map[string]string{"contact_whatsapp": req.ContactWhatsapp})
	}
	for _, path := range req.ImagePaths {
		r.SetFile("images", filepath.Clean(path))
	}

	resp, err := r.Post("/agri-share/equipment")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEquipment returns available listings, optionally narrowed to a pincode.
// Pass an empty pincode for the full catalog.
func (c *Client) ListEquipment(ctx context.Context, pincode string) ([]Equipment, error) {
	var out []Equipment
	r := c.request(ctx).SetResult(&out)
	if pincode != "" {
		r.SetQueryParam("pincode", pincode)
	}
	resp, err := r.Get("/agri-share/equipment")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEquipment fetches one listing by ID.
func (c *Client) GetEquipment(ctx context.Context, equipmentID string) (*Equipment, error) {
	var out Equipment
	resp, err := c.request(ctx).
		SetResult(&out).
		Get("/agri-share/equipment/" + equipmentID)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking files a rental request. The backend rejects bookings against
// unavailable equipment with a 404.
func (c *Client) CreateBooking(ctx context.Context, booking Booking) (*Booking, error) {
	if booking.Status == "" {
		booking.Status = "pending"
	}
	var out Booking
	resp, err := c.request(ctx).
		SetBody(booking).
		SetResult(&out).
		Post("/agri-share/bookings")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookings returns bookings where the user is the renter or owns the
// booked equipment.
func (c *Client) ListBookings(ctx context.Context, userID string) ([]Booking, error) {
	var out []Booking
	resp, err := c.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&out).
		Get("/agri-share/bookings")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
