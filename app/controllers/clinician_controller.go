package controllers

import (
	"errors"
	"net/http"

	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/services"

	"gorm.io/gorm"
)

const (
	npiMin = 1000000000
	npiMax = 9999999999
)

type ClinicianController struct {
	Accounts *services.AccountService
	Schedule *services.ScheduleService
}

func NewClinicianController(accounts *services.AccountService, schedule *services.ScheduleService) *ClinicianController {
	return &ClinicianController{Accounts: accounts, Schedule: schedule}
}

func (c *ClinicianController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicianRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateDefined(w, []field{
		{"username", req.Username},
		{"password", req.Password},
		{"npi", req.NPI},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"state", req.State},
		{"validate_npi", req.NPI >= npiMin && req.NPI <= npiMax},
	}) {
		return
	}
	userID, clinicianID, err := c.Accounts.CreateClinician(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "Clinician Created", map[string]any{
		"user_id":      userID,
		"clinician_id": clinicianID,
	})
}

func (c *ClinicianController) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, ok := parseID(raw)
	if !ok {
		respond(w, http.StatusNotFound, "Clinician Not Found", map[string]any{"id": raw})
		return
	}
	clinician, err := c.Schedule.GetClinician(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "Clinician Not Found", map[string]any{"id": raw})
			return
		}
		respondStoreError(w, err)
		return
	}
	user, err := c.Accounts.GetUserByID(clinician.UserID)
	if err != nil {
		// The clinician row exists but its owning user does not; the lookup
		// reports the missing user rather than a partial clinician payload.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "User Not Found", map[string]any{"id": clinician.UserID})
			return
		}
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "Clinician Found", map[string]any{
		"clinician": clinician,
		"user":      user,
	})
}

// Update and Delete are wired but intentionally inert; the route contract
// reserves them without touching the store.
func (c *ClinicianController) Update(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Update Clinician", nil)
}

func (c *ClinicianController) Delete(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Delete Clinician", nil)
}
