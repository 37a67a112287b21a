package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Appointment struct {
	ID          uint  `json:"id"`
	PatientID   uint  `json:"patient_id"`
	ClinicianID uint  `json:"clinician_id"`
	Timestamp   int64 `json:"timestamp"`
}

type rangeEnvelope struct {
	Message      string        `json:"message"`
	Appointments []Appointment `json:"appointments"`
}

// Client fetches appointment listings from the scheduling service.
type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// AppointmentsByRange lists appointments with timestamps inside [start, end],
// bounds in unix milliseconds.
func (c *Client) AppointmentsByRange(start, end int64) ([]Appointment, error) {
	url := fmt.Sprintf("%s/appointments/range/%d/%d", c.BaseURL, start, end)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("range fetch: status %d", resp.StatusCode)
	}
	var env rangeEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return env.Appointments, nil
}
