package directory

import "fmt"

func outletRef(id int) *int { return &id }

var outlets = []Outlet{
	{ID: 1, Name: "Hotel Seri Malaysia Kuala Lumpur"},
	{ID: 2, Name: "Hotel Seri Malaysia Genting"},
	{ID: 3, Name: "Hotel Seri Malaysia Seremban"},
	{ID: 4, Name: "Hotel Seri Malaysia Johor Bahru"},
}

var users = []User{
	// Top Management
	{ID: 1, Name: "Ahmad Ibrahim", Email: "ceo@hsm.com.my", Role: RoleTopManagement},
	{ID: 2, Name: "Sarah Lee", Email: "ops_director@hsm.com.my", Role: RoleTopManagement},

	// Halal Executives
	{ID: 10, Name: "Rahman Ali", Email: "halal.kl@hsm.com.my", Role: RoleHalalExecutive, OutletID: outletRef(1)},
	{ID: 11, Name: "Wong Mei Lin", Email: "halal.genting@hsm.com.my", Role: RoleHalalExecutive, OutletID: outletRef(2)},
	{ID: 12, Name: "Siti Aminah", Email: "halal.seremban@hsm.com.my", Role: RoleHalalExecutive, OutletID: outletRef(3)},
	{ID: 13, Name: "Farid Razak", Email: "halal.jb@hsm.com.my", Role: RoleHalalExecutive, OutletID: outletRef(4)},
}

// Service provides read-only access to the static outlet and user roster.
// There is no backing store: the roster is fixed at startup and never changes
// for the lifetime of the process.
type Service struct{}

// NewService creates a directory service over the built-in roster.
func NewService() *Service {
	return &Service{}
}

// ListOutlets returns all outlets in roster order.
func (s *Service) ListOutlets() []Outlet {
	out := make([]Outlet, len(outlets))
	copy(out, outlets)
	return out
}

// ListUsers returns all roster members in roster order.
func (s *Service) ListUsers() []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

// ResolveOutletName returns the display name for an outlet, or a generic
// "Outlet #<id>" placeholder when the id is not in the roster.
func (s *Service) ResolveOutletName(id int) string {
	for _, o := range outlets {
		if o.ID == id {
			return o.Name
		}
	}
	return fmt.Sprintf("Outlet #%d", id)
}
