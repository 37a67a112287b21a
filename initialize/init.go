package initialize

import (
	"fmt"
	"net/http"

	"clinic-scheduler/app/controllers"
	"clinic-scheduler/app/db"
	"clinic-scheduler/app/middleware"
	"clinic-scheduler/app/models"
	"clinic-scheduler/app/services"
	"clinic-scheduler/config"
	"clinic-scheduler/global"
	"clinic-scheduler/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler

	Accounts *services.AccountService
	Schedule *services.ScheduleService
}

// Build wires the whole service: store, services, controllers and the route
// tree, in that order. The returned App is ready to serve.
func Build(cfg *config.Config) (*App, error) {
	global.Config = cfg
	setLogLevel(cfg.Log.Level)

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Db = gdb

	// Schema is created on first open and left alone afterwards.
	if err := gdb.AutoMigrate(&models.User{}, &models.Clinician{}, &models.Patient{}, &models.Appointment{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	accounts := services.NewAccountService(gdb)
	schedule := services.NewScheduleService(gdb)

	mux := router.Build(routes(
		controllers.NewRootController(),
		controllers.NewUserController(accounts),
		controllers.NewClinicianController(accounts, schedule),
		controllers.NewPatientController(accounts, schedule),
		controllers.NewAppointmentController(schedule),
	))

	h := middleware.WithRequestID(middleware.Logging(middleware.CORS(mux)))

	return &App{Cfg: cfg, DB: gdb, Router: h, Accounts: accounts, Schedule: schedule}, nil
}

// The full URL surface of the service, declared as one static tree.
func routes(
	root *controllers.RootController,
	users *controllers.UserController,
	clinicians *controllers.ClinicianController,
	patients *controllers.PatientController,
	appointments *controllers.AppointmentController,
) *router.Route {
	return &router.Route{
		Get: root.Index,
		Children: map[string]*router.Route{
			"users": {
				Children: map[string]*router.Route{
					"{name}": {Get: users.Get},
				},
			},
			"clinicians": {
				Post: clinicians.Create,
				Children: map[string]*router.Route{
					"{id}": {
						Get:    clinicians.Get,
						Put:    clinicians.Update,
						Delete: clinicians.Delete,
					},
				},
			},
			"patients": {
				Post: patients.Create,
				Children: map[string]*router.Route{
					"{id}": {
						Get:    patients.Get,
						Put:    patients.Update,
						Delete: patients.Delete,
					},
				},
			},
			"appointments": {
				Post: appointments.Create,
				Children: map[string]*router.Route{
					"{id}": {
						Get:    appointments.Get,
						Put:    appointments.Update,
						Delete: appointments.Delete,
					},
					"range": {
						Children: map[string]*router.Route{
							"{start}": {
								Children: map[string]*router.Route{
									"{end}": {Get: appointments.Range},
								},
							},
						},
					},
				},
			},
		},
	}
}
