package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"clinic-scheduler/config"
	"clinic-scheduler/global"
	"clinic-scheduler/initialize"
	"clinic-scheduler/server"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file (optional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("load config")
	}

	app, err := initialize.Build(cfg)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	srv := server.NewHTTP(cfg.Server.Host, cfg.Server.Port, app.Router)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr()).Msg("http listening")
		if err := srv.Start(); err != nil {
			global.Logger.Fatal().Err(err).Msg("http server")
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	global.Logger.Info().Msg("shutting down")
	_ = srv.Shutdown()
}
