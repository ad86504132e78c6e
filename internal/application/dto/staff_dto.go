package dto

import "time"

// AddStaffRequest body for POST /api/staff.
type AddStaffRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
	Status string `json:"status"` // defaults to Active
}

// UpdateStaffRequest body for PUT /api/staff/{id}. Nil fields are untouched.
type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

// StaffResponse one staff row.
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StaffListResponse response for GET /api/staff.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
}
