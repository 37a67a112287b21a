package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-scheduler/app/dto"
	"clinic-scheduler/app/models"
	"clinic-scheduler/app/services"

	"gorm.io/gorm"
)

type AppointmentController struct{ Schedule *services.ScheduleService }

func NewAppointmentController(schedule *services.ScheduleService) *AppointmentController {
	return &AppointmentController{Schedule: schedule}
}

func (c *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateDefined(w, []field{
		{"patient_id", req.PatientID},
		{"clinician_id", req.ClinicianID},
		{"timestamp", req.Timestamp},
	}) {
		return
	}
	id, err := c.Schedule.CreateAppointment(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			respond(w, http.StatusBadRequest, "Patient Not Found", map[string]any{"patient_id": req.PatientID})
		case errors.Is(err, services.ErrClinicianNotFound):
			respond(w, http.StatusBadRequest, "Clinician Not Found", map[string]any{"clinician_id": req.ClinicianID})
		default:
			respondStoreError(w, err)
		}
		return
	}
	respond(w, http.StatusOK, "Appointment Created", map[string]any{"appointment_id": id})
}

func (c *AppointmentController) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, ok := parseID(raw)
	if !ok {
		respond(w, http.StatusNotFound, "Appointment Not Found", map[string]any{"id": raw})
		return
	}
	appointment, err := c.Schedule.GetAppointment(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "Appointment Not Found", map[string]any{"id": raw})
			return
		}
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "Appointment Found", map[string]any{"appointment": appointment})
}

// Range lists appointments with start <= timestamp <= end. An empty range is a
// 200 with an empty list.
func (c *AppointmentController) Range(w http.ResponseWriter, r *http.Request) {
	start, err := strconv.ParseInt(r.PathValue("start"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, "Input (start) must be defined", nil)
		return
	}
	end, err := strconv.ParseInt(r.PathValue("end"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, "Input (end) must be defined", nil)
		return
	}
	appointments, err := c.Schedule.AppointmentsByRange(start, end)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	respond(w, http.StatusOK, "Appointments Found", map[string]any{"appointments": appointments})
}

func (c *AppointmentController) Update(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Update Appointment", nil)
}

func (c *AppointmentController) Delete(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Delete Appointment", nil)
}
