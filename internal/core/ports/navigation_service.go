package ports

// NavigationItem is a rendered sidebar entry: a navigation-map entry plus the
// active marker for the current page.
type NavigationItem struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Page   string `json:"page"`
	Active bool   `json:"active"`
}

// NavigationService builds the role-scoped sidebar. Pure: no side effects
// beyond the returned slice.
type NavigationService interface {
	// Menu returns the ordered entries for role, marking the entry whose
	// page equals currentPath as active. Unknown roles yield an empty list.
	Menu(role, currentPath string) []NavigationItem
}
