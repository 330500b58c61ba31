package models

// UserRole defines the roles the backend issues tokens for.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Role        UserRole `json:"role"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	OutletID    *uint    `json:"outlet_id,omitempty"` // set for owner accounts
}
