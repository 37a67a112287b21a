package models

// Schema mirrors the four-table layout the service has always used: integer
// autoincrement ids, a unique username per user, and a hard range check on npi
// so a bad value is rejected even if it slips past request validation.

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:191;not null" json:"username"`
	Hash     string `gorm:"size:255;not null" json:"hash"`
	Salt     string `gorm:"size:64;not null" json:"salt"`
}

type Clinician struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:191;not null" json:"first_name"`
	LastName  string `gorm:"size:191;not null" json:"last_name"`
	NPI       int64  `gorm:"column:npi;not null;check:chk_npi,npi >= 1000000000 AND npi <= 9999999999" json:"npi"`
	State     string `gorm:"size:32;not null" json:"state"`
	UserID    uint   `gorm:"not null" json:"user_id"`
}

type Patient struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null" json:"user_id"`
}

// Appointment timestamps are unix milliseconds, matching the wire format the
// display client filters on.
type Appointment struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	PatientID   uint  `gorm:"not null" json:"patient_id"`
	ClinicianID uint  `gorm:"not null" json:"clinician_id"`
	Timestamp   int64 `gorm:"not null;index" json:"timestamp"`
}
