package controllers

import (
	"errors"
	"net/http"

	"clinic-scheduler/app/services"

	"gorm.io/gorm"
)

type UserController struct{ Accounts *services.AccountService }

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{Accounts: accounts}
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	user, err := c.Accounts.GetUserByUsername(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(w, http.StatusNotFound, "User Not Found", map[string]any{"username": name})
			return
		}
		respondStoreError(w, err)
		return
	}
	respond(w, http.StatusOK, "User Found", map[string]any{"user": user})
}
