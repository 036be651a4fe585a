package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// redirectResponse carries a user-visible message plus the page the client
// should navigate to next.
type redirectResponse struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// --- Auth ---

type loginRequest struct {
	Code     string `json:"code"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Role   string `json:"role"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	Session  sessionResponse `json:"session"`
	Redirect string          `json:"redirect"`
}

// --- Admission ---

// admitPatientRequest mirrors the admission form: everything required except
// phone, and no format validation on cedula or phone beyond presence.
type admitPatientRequest struct {
	Name      string `json:"name"      validate:"required"`
	Cedula    string `json:"cedula"    validate:"required"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender    string `json:"gender"    validate:"required"`
	Phone     string `json:"phone"`
}

type patientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cedula    string `json:"cedula"`
	Phone     string `json:"phone,omitempty"`
	Birthdate string `json:"birthdate"`
	Gender    string `json:"gender"`
}

type admitPatientResponse struct {
	Message string          `json:"message"`
	Patient patientResponse `json:"patient"`
}

// listPatientsResponse always carries an explicit total so a zero-match
// search renders a "no results" state instead of a bare empty table.
type listPatientsResponse struct {
	Data    []patientResponse `json:"data"`
	Total   int               `json:"total"`
	Message string            `json:"message,omitempty"`
}

// --- Clinical record ---

type recordResponse struct {
	Patient patientResponse `json:"patient"`
	Age     int             `json:"age"`
}

type saveNoteRequest struct {
	Text string `json:"text"`
}

// --- Roster ---

type rosterEntryRequest struct {
	Name      string `json:"name" validate:"required"`
	Cedula    string `json:"cedula"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
	Gender    string `json:"gender"`
}
