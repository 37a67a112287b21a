package services

import (
	"errors"

	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/models"
	"clinic-scheduler/app/repo"

	"gorm.io/gorm"
)

// Returned by CreateAppointment when a referenced id resolves to no row.
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrClinicianNotFound = errors.New("clinician not found")
)

type ScheduleService struct {
	appointments *repo.AppointmentRepository
	patients     *repo.PatientRepository
	clinicians   *repo.ClinicianRepository
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		appointments: repo.NewAppointmentRepository(db),
		patients:     repo.NewPatientRepository(db),
		clinicians:   repo.NewClinicianRepository(db),
	}
}

// CreateAppointment rejects references that resolve to no row, so the store
// never holds a dangling appointment.
func (s *ScheduleService) CreateAppointment(req dto.CreateAppointmentRequest) (uint, error) {
	if _, err := s.patients.FindByID(req.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPatientNotFound
		}
		return 0, err
	}
	if _, err := s.clinicians.FindByID(req.ClinicianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrClinicianNotFound
		}
		return 0, err
	}
	a := models.Appointment{
		PatientID:   req.PatientID,
		ClinicianID: req.ClinicianID,
		Timestamp:   req.Timestamp,
	}
	if err := s.appointments.Create(&a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *ScheduleService) GetAppointment(id uint) (*models.Appointment, error) {
	return s.appointments.FindByID(id)
}

func (s *ScheduleService) GetClinician(id uint) (*models.Clinician, error) {
	return s.clinicians.FindByID(id)
}

func (s *ScheduleService) GetPatient(id uint) (*models.Patient, error) {
	return s.patients.FindByID(id)
}

func (s *ScheduleService) AppointmentsByRange(start, end int64) ([]models.Appointment, error) {
	return s.appointments.FindByRange(start, end)
}
