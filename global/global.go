package global

import (
	"clinic-scheduler/config"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	Logger zerolog.Logger
	Db     *gorm.DB
)
