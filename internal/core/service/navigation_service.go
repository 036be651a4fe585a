package service

import (
	"github.com/hygia-health/hygia-api/internal/core/domain"
	"github.com/hygia-health/hygia-api/internal/core/ports"
)

// NavigationService builds the role-scoped sidebar from the injected
// navigation map. Pure function of (role, current path).
type NavigationService struct {
	nav domain.NavigationMap
}

func NewNavigationService(nav domain.NavigationMap) *NavigationService {
	return &NavigationService{nav: nav}
}

// Menu returns the ordered entries for role. The entry whose page matches
// currentPath is marked active; unknown roles yield an empty list.
func (s *NavigationService) Menu(role, currentPath string) []ports.NavigationItem {
	entries := s.nav[role]
	items := make([]ports.NavigationItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ports.NavigationItem{
			Label:  e.Label,
			Icon:   e.Icon,
			Page:   e.Page,
			Active: e.Page == currentPath,
		})
	}
	return items
}
