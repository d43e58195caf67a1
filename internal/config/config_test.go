package config

import "testing"

func TestNormalizeConnectionString(t *testing.T) {
	got := normalizeConnectionString("Host=db;Port=5432;Database=bank_ledger_db;Username=ledger;Password=secret;Timeout=30")
	want := "host=db port=5432 dbname=bank_ledger_db user=ledger password=secret connect_timeout=30 sslmode=disable"
	if got != want {
		t.Fatalf("normalized = %q, want %q", got, want)
	}
}

func TestNormalizeConnectionStringPassthrough(t *testing.T) {
	raw := "postgres://ledger:secret@db:5432/bank_ledger_db?sslmode=disable"
	if got := normalizeConnectionString(raw); got != raw {
		t.Fatalf("url form should pass through, got %q", got)
	}

	libpq := "host=db port=5432 dbname=bank_ledger_db"
	if got := normalizeConnectionString(libpq); got != libpq {
		t.Fatalf("libpq form should pass through, got %q", got)
	}
}

func TestNormalizeConnectionStringKeepsExplicitSSLMode(t *testing.T) {
	got := normalizeConnectionString("Host=db;Database=x;SSLMode=require")
	want := "host=db dbname=x sslmode=require"
	if got != want {
		t.Fatalf("normalized = %q, want %q", got, want)
	}
}
