package model

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.URL != DefaultURL {
		t.Errorf("unexpected URL: %s", cfg.Source.URL)
	}
	if cfg.Extract.MaxTables != 2 {
		t.Errorf("expected 2 tables, got %d", cfg.Extract.MaxTables)
	}
	if cfg.Extract.MinCells != 5 {
		t.Errorf("expected 5 cells, got %d", cfg.Extract.MinCells)
	}
	if len(cfg.Extract.TableClasses) != 2 || cfg.Extract.TableClasses[0] != "wikitable" {
		t.Errorf("unexpected table classes: %v", cfg.Extract.TableClasses)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled by default")
	}
	if cfg.Source.InsecureTLS {
		t.Error("TLS verification should be on by default")
	}
}
