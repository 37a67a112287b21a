package repo

import (
	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

// FindViewByUsername returns the user row joined with its optional clinician
// and patient ids. An absent relation leaves the id null rather than failing.
func (r *UserRepository) FindViewByUsername(username string) (*dto.UserView, error) {
	var v dto.UserView
	err := r.userView().Where("users.username = ?", username).Take(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *UserRepository) FindViewByID(id uint) (*dto.UserView, error) {
	var v dto.UserView
	err := r.userView().Where("users.id = ?", id).Take(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *UserRepository) userView() *gorm.DB {
	return r.db.Model(&models.User{}).
		Select("users.id, users.username, users.hash, users.salt, clinicians.id AS clinician_id, patients.id AS patient_id").
		Joins("LEFT JOIN clinicians ON users.id = clinicians.user_id").
		Joins("LEFT JOIN patients ON users.id = patients.user_id")
}

// Update replaces the full row identified by u.ID.
func (r *UserRepository) Update(u *models.User) error { return r.db.Save(u).Error }

func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
