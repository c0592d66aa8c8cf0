package model

import "strings"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Roles lists every role an account can hold.
var Roles = []Role{RoleAdmin, RoleEditor}

// ParseRole normalizes raw and reports whether it names a known role.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Roles {
		if role == known {
			return role, true
		}
	}

	return "", false
}

func (r Role) String() string {
	return string(r)
}

type Account struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// AuthClaims is the identity decoded from a valid bearer token.
type AuthClaims struct {
	AccountID int64  `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

type AccountView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (a Account) View() AccountView {
	return AccountView{ID: a.ID, Email: a.Email, Role: a.Role}
}

type AccountList struct {
	Accounts []AccountView `json:"accounts"`
}

type LoginResult struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}
