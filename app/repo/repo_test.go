package repo_test

import (
	"errors"
	"path/filepath"
	"testing"

	"clinic-scheduler/app/db"
	"clinic-scheduler/app/models"
	"clinic-scheduler/app/repo"

	"gorm.io/gorm"
)

func openStore(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.sqlite")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Clinician{}, &models.Patient{}, &models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func createUser(t *testing.T, users *repo.UserRepository, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Hash: "h", Salt: "s"}
	if err := users.Create(u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func TestUserUniqueUsername(t *testing.T) {
	gdb := openStore(t)
	users := repo.NewUserRepository(gdb)
	createUser(t, users, "alice")
	err := users.Create(&models.User{Username: "alice", Hash: "h2", Salt: "s2"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate username: err = %v, want ErrDuplicatedKey", err)
	}
}

func TestUserViewLeftJoin(t *testing.T) {
	gdb := openStore(t)
	users := repo.NewUserRepository(gdb)
	u := createUser(t, users, "alice")

	// no relations yet: both joined ids must be null
	v, err := users.FindViewByUsername("alice")
	if err != nil {
		t.Fatalf("find view: %v", err)
	}
	if v.ClinicianID != nil || v.PatientID != nil {
		t.Errorf("fresh user: clinician_id=%v patient_id=%v, want both nil", v.ClinicianID, v.PatientID)
	}
	if v.Hash != "h" || v.Salt != "s" {
		t.Errorf("view dropped credential columns: %+v", v)
	}

	p := &models.Patient{UserID: u.ID}
	if err := repo.NewPatientRepository(gdb).Create(p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	v, err = users.FindViewByID(u.ID)
	if err != nil {
		t.Fatalf("find view by id: %v", err)
	}
	if v.PatientID == nil || *v.PatientID != p.ID {
		t.Errorf("patient_id = %v, want %d", v.PatientID, p.ID)
	}
	if v.ClinicianID != nil {
		t.Errorf("clinician_id = %v, want nil", v.ClinicianID)
	}
}

func TestUserViewMissing(t *testing.T) {
	gdb := openStore(t)
	users := repo.NewUserRepository(gdb)
	if _, err := users.FindViewByUsername("nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user: err = %v, want ErrRecordNotFound", err)
	}
}

func TestClinicianNPICheckConstraint(t *testing.T) {
	gdb := openStore(t)
	u := createUser(t, repo.NewUserRepository(gdb), "doc")
	clinicians := repo.NewClinicianRepository(gdb)

	bad := &models.Clinician{FirstName: "A", LastName: "B", NPI: 99, State: "NY", UserID: u.ID}
	if err := clinicians.Create(bad); err == nil {
		t.Fatal("out-of-range npi accepted by the store")
	}

	good := &models.Clinician{FirstName: "A", LastName: "B", NPI: 1234567890, State: "NY", UserID: u.ID}
	if err := clinicians.Create(good); err != nil {
		t.Fatalf("in-range npi rejected: %v", err)
	}
	got, err := clinicians.FindByID(good.ID)
	if err != nil {
		t.Fatalf("find clinician: %v", err)
	}
	if got.NPI != 1234567890 {
		t.Errorf("npi round-trip = %d, want 1234567890", got.NPI)
	}
}

func TestAppointmentRangeInclusive(t *testing.T) {
	gdb := openStore(t)
	appointments := repo.NewAppointmentRepository(gdb)
	for _, ts := range []int64{50, 100, 150, 200, 250} {
		if err := appointments.Create(&models.Appointment{PatientID: 1, ClinicianID: 1, Timestamp: ts}); err != nil {
			t.Fatalf("create appointment ts=%d: %v", ts, err)
		}
	}

	got, err := appointments.FindByRange(100, 200)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	want := []int64{100, 150, 200}
	if len(got) != len(want) {
		t.Fatalf("range returned %d rows, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Timestamp != want[i] {
			t.Errorf("row %d timestamp = %d, want %d (ascending order)", i, a.Timestamp, want[i])
		}
	}

	empty, err := appointments.FindByRange(300, 400)
	if err != nil {
		t.Fatalf("empty range errored: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty range returned %d rows", len(empty))
	}
}

func TestAppointmentUpdateReplacesRow(t *testing.T) {
	gdb := openStore(t)
	appointments := repo.NewAppointmentRepository(gdb)
	a := &models.Appointment{PatientID: 1, ClinicianID: 2, Timestamp: 111}
	if err := appointments.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}
	a.PatientID, a.ClinicianID, a.Timestamp = 3, 4, 222
	if err := appointments.Update(a); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := appointments.FindByID(a.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.PatientID != 3 || got.ClinicianID != 4 || got.Timestamp != 222 {
		t.Errorf("updated row = %+v", got)
	}
}

func TestUserUpdateAndDelete(t *testing.T) {
	gdb := openStore(t)
	users := repo.NewUserRepository(gdb)
	u := createUser(t, users, "alice")

	u.Username = "alice2"
	u.Hash = "h2"
	if err := users.Update(u); err != nil {
		t.Fatalf("update: %v", err)
	}
	v, err := users.FindViewByUsername("alice2")
	if err != nil {
		t.Fatalf("find updated: %v", err)
	}
	if v.Hash != "h2" {
		t.Errorf("hash = %s, want h2", v.Hash)
	}

	if err := users.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.FindViewByID(u.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted user still found, err = %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	gdb := openStore(t)
	u := createUser(t, repo.NewUserRepository(gdb), "doc")

	clinicians := repo.NewClinicianRepository(gdb)
	c := &models.Clinician{FirstName: "A", LastName: "B", NPI: 1234567890, State: "NY", UserID: u.ID}
	if err := clinicians.Create(c); err != nil {
		t.Fatalf("create clinician: %v", err)
	}
	if err := clinicians.Delete(c.ID); err != nil {
		t.Fatalf("delete clinician: %v", err)
	}
	if _, err := clinicians.FindByID(c.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted clinician still found, err = %v", err)
	}

	patients := repo.NewPatientRepository(gdb)
	p := &models.Patient{UserID: u.ID}
	if err := patients.Create(p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if err := patients.Delete(p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if _, err := patients.FindByID(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted patient still found, err = %v", err)
	}

	appointments := repo.NewAppointmentRepository(gdb)
	a := &models.Appointment{PatientID: 1, ClinicianID: 1, Timestamp: 1}
	if err := appointments.Create(a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if err := appointments.Delete(a.ID); err != nil {
		t.Fatalf("delete appointment: %v", err)
	}
	if _, err := appointments.FindByID(a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted appointment still found, err = %v", err)
	}
}
