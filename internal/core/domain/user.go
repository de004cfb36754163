package domain

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID       uint64
	Name     string
	Email    string
	Password string
	Role     UserRole
}
