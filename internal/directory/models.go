package directory

// UserRole identifies which escalation tier a roster member belongs to.
type UserRole string

const (
	RoleHalalExecutive UserRole = "HALAL_EXECUTIVE"
	RoleTopManagement  UserRole = "TOP_MANAGEMENT"
	RoleAdmin          UserRole = "ADMIN"
)

// Outlet is one physical hotel location monitored by the compliance system.
type Outlet struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is one roster member. A Halal executive is tied to exactly one outlet
// via OutletID; top management oversees all outlets and carries none.
type User struct {
	ID       int      `json:"user_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	OutletID *int     `json:"outlet_id,omitempty"`
}
