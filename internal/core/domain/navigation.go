package domain

// Page identifiers used as redirect destinations and sidebar targets.
const (
	PageLogin            = "/login"
	PageAdmission        = "/admission"
	PageClinicalRecord   = "/clinical-record"
	PagePharmacy         = "/pharmacy"
	PagePurchaseOrders   = "/purchase-orders"
	PageMedicalDashboard = "/medical-dashboard"
)

// NavEntry is a single sidebar item.
type NavEntry struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Page  string `json:"page"`
}

// NavigationMap maps a role to its ordered sidebar entries. It doubles as the
// set of recognized roles: a role with no entry here cannot hold a valid
// session.
type NavigationMap map[string][]NavEntry

// DefaultNavigationMap returns the standard role→menu structure. Callers get
// their own copy; the map is injected, never shared ambient state.
func DefaultNavigationMap() NavigationMap {
	return NavigationMap{
		RoleMedico: {
			{Label: "Historia Clínica", Icon: "fas fa-file-medical", Page: PageClinicalRecord},
			{Label: "Dashboard Médico", Icon: "fas fa-chart-line", Page: PageMedicalDashboard},
		},
		RoleRecepcionista: {
			{Label: "Admisión y Citas", Icon: "fas fa-calendar-check", Page: PageAdmission},
		},
		RoleFarmaceutico: {
			{Label: "Inventario Farmacia", Icon: "fas fa-pills", Page: PagePharmacy},
			{Label: "Órdenes de Compra", Icon: "fas fa-truck-loading", Page: PagePurchaseOrders},
		},
	}
}

// landingPages is the fixed role→page table consulted after login. Adding a
// role is a data change here, not a control-flow change.
var landingPages = map[string]string{
	RoleMedico:        PageClinicalRecord,
	RoleRecepcionista: PageAdmission,
	RoleFarmaceutico:  PagePharmacy,
}

// LandingPage resolves the page a role is redirected to after login.
// The second return is false for any role outside the table.
func LandingPage(role string) (string, bool) {
	page, ok := landingPages[role]
	return page, ok
}
