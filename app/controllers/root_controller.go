package controllers

import "net/http"

type RootController struct{}

func NewRootController() *RootController { return &RootController{} }

func (c *RootController) Index(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, "Clinic Scheduler Api", nil)
}
