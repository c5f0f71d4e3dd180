// Package models defines the wire-level data types exchanged with the
// platform backend.
package models

// RoleSuperAdmin is the role title required to use the admin console.
const RoleSuperAdmin = "SUPER_ADMIN"

// Role is a named platform role.
type Role struct {
	Title string `json:"title"`
}

// RoleRef is one entry of a user's role set. The backend nests the role
// record one level deep.
type RoleRef struct {
	Role Role `json:"role"`
}

// User is the identity record resolved from a bearer token.
type User struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Roles []RoleRef `json:"userRole"`
}

// HasRole reports whether the user's role set contains a role with the
// given title.
func (u *User) HasRole(title string) bool {
	for _, r := range u.Roles {
		if r.Role.Title == title {
			return true
		}
	}
	return false
}
