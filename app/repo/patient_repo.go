package repo

import (
	"clinic-scheduler/app/models"

	"gorm.io/gorm"
)

type PatientRepository struct{ db *gorm.DB }

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(p *models.Patient) error { return r.db.Create(p).Error }

func (r *PatientRepository) FindByID(id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Patient{}, id).Error
}
