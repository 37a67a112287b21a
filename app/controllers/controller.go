package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"clinic-scheduler/global"

	"gorm.io/gorm"
)

// Every response, success or failure, is the same envelope: a message plus
// whatever extra fields the operation produced.
func respond(w http.ResponseWriter, status int, message string, fields map[string]any) {
	ev := global.Logger.Info()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(message)

	body := map[string]any{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		respond(w, http.StatusConflict, "Username already exists", nil)
		return
	}
	global.Logger.Error().Err(err).Msg("store error")
	respond(w, http.StatusInternalServerError, "Internal Server Error", nil)
}

type field struct {
	name  string
	value any
}

// validateDefined rejects the first falsy field in declaration order. Falsy is
// the loose notion the API has always used: missing, empty string, zero or
// false. A legitimately zero numeric value is therefore rejected too; callers
// rely on that quirk staying put.
func validateDefined(w http.ResponseWriter, fields []field) bool {
	for _, f := range fields {
		if falsy(f.value) {
			respond(w, http.StatusBadRequest, fmt.Sprintf("Input (%s) must be defined", f.name), nil)
			return false
		}
	}
	return true
}

func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case uint:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond(w, http.StatusBadRequest, "Input (body) must be defined", nil)
		return false
	}
	return true
}

// parseID coerces a positional path parameter. A value that does not parse as
// an integer can match no row, so callers treat it as a plain miss.
func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
