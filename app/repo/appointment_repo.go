package repo

import (
	"clinic-scheduler/app/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct{ db *gorm.DB }

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(a *models.Appointment) error { return r.db.Create(a).Error }

func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByRange returns appointments with start <= timestamp <= end, both bounds
// inclusive, ordered by timestamp for a deterministic listing.
func (r *AppointmentRepository) FindByRange(start, end int64) ([]models.Appointment, error) {
	var out []models.Appointment
	err := r.db.
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

// Update replaces the full row identified by a.ID.
func (r *AppointmentRepository) Update(a *models.Appointment) error { return r.db.Save(a).Error }

func (r *AppointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
