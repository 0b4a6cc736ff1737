package user

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID        uint
	Email     string
	Password  string
	Name      string
	Role      Role
	GoogleID  *string
	CreatedAt time.Time
}
