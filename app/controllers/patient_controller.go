package controllers

import (
	"errors"
	"net/http"

	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/services"

	"gorm.io/gorm"
)

type PatientController struct {
	Accounts *services.AccountService
	Schedule *services.ScheduleService
}

func NewPatientController(accounts *services.AccountService, schedule *services.ScheduleService) *PatientController {
	return &PatientController{Accounts: accounts, Schedule: schedule}
}

func (c *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateDefined(w, []field{
		{"username", req.Username},
		{"password", req.Password},
	}) {
		return
	}
	userID, patientID, err := c.Accounts.CreatePatient(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "Patient Created", map[string]any{
		"user_id":    userID,
		"patient_id": patientID,
	})
}

func (c *PatientController) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, ok := parseID(raw)
	if !ok {
		respond(w, http.StatusNotFound, "Patient Not Found", map[string]any{"id": raw})
		return
	}
	patient, err := c.Schedule.GetPatient(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "Patient Not Found", map[string]any{"id": raw})
			return
		}
		respondStoreError(w, err)
		return
	}
	user, err := c.Accounts.GetUserByID(patient.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "User Not Found", map[string]any{"id": patient.UserID})
			return
		}
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "Patient Found", map[string]any{
		"patient": patient,
		"user":    user,
	})
}

func (c *PatientController) Update(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Update Patient", nil)
}

func (c *PatientController) Delete(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Delete Patient", nil)
}
