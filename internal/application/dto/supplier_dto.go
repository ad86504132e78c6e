package dto

import "time"

// AddSupplierRequest body for POST /api/suppliers.
type AddSupplierRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
}

// UpdateSupplierRequest body for PUT /api/suppliers/{id}. Nil fields are untouched.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Phone    *string `json:"phone"`
}

// SupplierResponse one supplier row.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierListResponse response for GET /api/suppliers.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
}
