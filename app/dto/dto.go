package dto

type CreateClinicianRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	NPI       int64  `json:"npi"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	State     string `json:"state"`
}

type CreatePatientRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateAppointmentRequest struct {
	PatientID   uint  `json:"patient_id"`
	ClinicianID uint  `json:"clinician_id"`
	Timestamp   int64 `json:"timestamp"`
}

// UserView is the user row as returned by lookups: the left-joined clinician
// and patient ids are null when no such relation exists.
type UserView struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Hash        string `json:"hash"`
	Salt        string `json:"salt"`
	ClinicianID *uint  `json:"clinician_id"`
	PatientID   *uint  `json:"patient_id"`
}
