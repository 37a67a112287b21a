package repo

import (
	"clinic-scheduler/app/models"

	"gorm.io/gorm"
)

type ClinicianRepository struct{ db *gorm.DB }

func NewClinicianRepository(db *gorm.DB) *ClinicianRepository {
	return &ClinicianRepository{db: db}
}

func (r *ClinicianRepository) Create(c *models.Clinician) error { return r.db.Create(c).Error }

func (r *ClinicianRepository) FindByID(id uint) (*models.Clinician, error) {
	var c models.Clinician
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClinicianRepository) Delete(id uint) error {
	return r.db.Delete(&models.Clinician{}, id).Error
}
