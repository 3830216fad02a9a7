package auth

// Roles the dashboard distinguishes. Staff run the pricing calculator;
// admins additionally manage settings.
const (
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
