package models

// Staff roles.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Roles lists every valid role.
var Roles = []string{RoleAdmin, RoleEmployee}

// User is an employee account. Email is unique and immutable after creation;
// all user mutations address the record by email.
type User struct {
	ID           int       `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Avatar       *ImageRef `json:"avatar"`
	CreatedAt    string    `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserPage is the paginated /users response payload.
type UserPage struct {
	Users      []User `json:"users"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
}
