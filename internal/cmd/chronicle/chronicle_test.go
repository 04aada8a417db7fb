package chronicle

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("chronicle", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.HealthAddr != "" {
		t.Fatalf("expected empty health addr, got %q", cfg.HealthAddr)
	}
	if cfg.Locale != "" {
		t.Fatalf("expected empty locale, got %q", cfg.Locale)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("chronicle", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-health-addr", "127.0.0.1:9999", "-locale", "pt-BR"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HealthAddr != "127.0.0.1:9999" {
		t.Fatalf("expected health addr override, got %q", cfg.HealthAddr)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected locale override, got %q", cfg.Locale)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("IRONFELL_CHRONICLE_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("chronicle", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfg.Locale)
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	t.Setenv("IRONFELL_OTEL_ENABLED", "false")

	err := Run(context.Background(), Config{Transport: "tcp"})
	if err == nil {
		t.Fatal("expected unsupported transport error, got nil")
	}
}
