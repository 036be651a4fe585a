package domain

import "testing"

func TestLandingPage_KnownRoles(t *testing.T) {
	cases := map[string]string{
		RoleMedico:        PageClinicalRecord,
		RoleRecepcionista: PageAdmission,
		RoleFarmaceutico:  PagePharmacy,
	}
	for role, want := range cases {
		page, ok := LandingPage(role)
		if !ok {
			t.Fatalf("LandingPage(%s) not found", role)
		}
		if page != want {
			t.Errorf("LandingPage(%s) = %s, want %s", role, page, want)
		}
	}
}

func TestLandingPage_UnknownRole(t *testing.T) {
	if _, ok := LandingPage("auditor"); ok {
		t.Fatalf("expected no landing page for unknown role")
	}
}

func TestSession_Valid(t *testing.T) {
	nav := DefaultNavigationMap()

	s := &Session{ID: "s1", Role: RoleMedico}
	if !s.Valid(nav) {
		t.Fatalf("session with mapped role should be valid")
	}

	s.Role = "auditor"
	if s.Valid(nav) {
		t.Fatalf("session with unmapped role must be invalid")
	}

	var nilSession *Session
	if nilSession.Valid(nav) {
		t.Fatalf("nil session must be invalid")
	}
}

func TestParseRosterKind(t *testing.T) {
	if _, err := ParseRosterKind("patients"); err != nil {
		t.Fatalf("patients should parse: %v", err)
	}
	if _, err := ParseRosterKind("staff"); err != nil {
		t.Fatalf("staff should parse: %v", err)
	}
	if _, err := ParseRosterKind("visitors"); err != ErrUnknownRosterKind {
		t.Fatalf("expected ErrUnknownRosterKind, got %v", err)
	}
}
