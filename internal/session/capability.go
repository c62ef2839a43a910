package session

// Capability names an action gated on who the session belongs to. Admin-only
// UI and fetches all go through one predicate instead of re-deriving the
// role inline at each call site.
type Capability string

const (
	CapViewStoryAnalytics Capability = "story:analytics"
	CapManageTournaments  Capability = "tournaments:manage"
	CapAdminDashboard     Capability = "admin:dashboard"
)

// Can reports whether the current session may perform the capability.
func (s *Store) Can(capability Capability) bool {
	current := s.Current()
	if current == nil {
		return false
	}

	switch capability {
	case CapViewStoryAnalytics, CapManageTournaments, CapAdminDashboard:
		return current.User.IsAdmin()
	default:
		return true
	}
}

// IsAdmin is shorthand for the admin-only capabilities.
func (s *Store) IsAdmin() bool {
	current := s.Current()
	return current != nil && current.User.IsAdmin()
}
