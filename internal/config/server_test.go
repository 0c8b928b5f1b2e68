package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.TableDefaultName != "Table" {
		t.Fatalf("TableDefaultName = %q, want Table", cfg.TableDefaultName)
	}
	if cfg.TableDefaultMaxPlayers != 9 {
		t.Fatalf("TableDefaultMaxPlayers = %d, want 9", cfg.TableDefaultMaxPlayers)
	}
	if cfg.TableDefaultSmallBlind != 1 || cfg.TableDefaultBigBlind != 2 {
		t.Fatalf("blinds = %d/%d, want 1/2", cfg.TableDefaultSmallBlind, cfg.TableDefaultBigBlind)
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("TABLE_DEFAULT_MAX_PLAYERS", "6")
	t.Setenv("TABLE_DEFAULT_SMALL_BLIND", "25")
	t.Setenv("TABLE_DEFAULT_BIG_BLIND", "50")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr = %q, want :9999", cfg.HTTPAddr)
	}
	if cfg.TableDefaultMaxPlayers != 6 {
		t.Fatalf("TableDefaultMaxPlayers = %d, want 6", cfg.TableDefaultMaxPlayers)
	}
	if cfg.TableDefaultSmallBlind != 25 || cfg.TableDefaultBigBlind != 50 {
		t.Fatalf("blinds = %d/%d, want 25/50", cfg.TableDefaultSmallBlind, cfg.TableDefaultBigBlind)
	}
}
