package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 3002 {
		t.Errorf("server.port = %d, want 3002", cfg.Server.Port)
	}
	if cfg.DB.Driver != "sqlite" {
		t.Errorf("db.driver = %s, want sqlite", cfg.DB.Driver)
	}
	if cfg.DB.Path != "data/db.sqlite" {
		t.Errorf("db.path = %s", cfg.DB.Path)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CLINIC_SERVER_PORT", "4000")
	t.Setenv("CLINIC_DB_DRIVER", "mysql")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("server.port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.DB.Driver != "mysql" {
		t.Errorf("db.driver = %s, want mysql", cfg.DB.Driver)
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
