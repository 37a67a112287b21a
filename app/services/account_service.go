package services

import (
	"clinic-scheduler/app/credentials"
	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/models"
	"clinic-scheduler/app/repo"

	"gorm.io/gorm"
)

// AccountService creates and reads the user-backed resources. A clinician or
// patient spans two rows (its user row plus its own), so each create runs in a
// single transaction: either both rows land or neither does.
type AccountService struct {
	db    *gorm.DB
	users *repo.UserRepository
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db, users: repo.NewUserRepository(db)}
}

func (s *AccountService) CreateClinician(req dto.CreateClinicianRequest) (userID, clinicianID uint, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		uid, err := createUser(tx, req.Username, req.Password)
		if err != nil {
			return err
		}
		c := models.Clinician{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			NPI:       req.NPI,
			State:     req.State,
			UserID:    uid,
		}
		if err := repo.NewClinicianRepository(tx).Create(&c); err != nil {
			return err
		}
		userID, clinicianID = uid, c.ID
		return nil
	})
	return userID, clinicianID, err
}

func (s *AccountService) CreatePatient(req dto.CreatePatientRequest) (userID, patientID uint, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		uid, err := createUser(tx, req.Username, req.Password)
		if err != nil {
			return err
		}
		p := models.Patient{UserID: uid}
		if err := repo.NewPatientRepository(tx).Create(&p); err != nil {
			return err
		}
		userID, patientID = uid, p.ID
		return nil
	})
	return userID, patientID, err
}

func createUser(tx *gorm.DB, username, password string) (uint, error) {
	hash, salt, err := credentials.HashPassword(password)
	if err != nil {
		return 0, err
	}
	u := models.User{Username: username, Hash: hash, Salt: salt}
	if err := repo.NewUserRepository(tx).Create(&u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *AccountService) GetUserByUsername(username string) (*dto.UserView, error) {
	return s.users.FindViewByUsername(username)
}

func (s *AccountService) GetUserByID(id uint) (*dto.UserView, error) {
	return s.users.FindViewByID(id)
}
