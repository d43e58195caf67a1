package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=bank_ledger_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultListenAddr = ":8080"
const defaultChannelID = "LedgerApp"
const defaultChannelKey = "LedgerKey001"
const defaultMigrationsDir = "migrations"

type Config struct {
	DatabaseDSN   string
	ListenAddr    string
	MigrationsDir string
	ChannelID     string
	ChannelKey    string
}

func Load() (Config, error) {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return Config{
		DatabaseDSN:   normalizeConnectionString(envOrDefault("DATABASE_DSN", defaultConnectionString)),
		ListenAddr:    envOrDefault("LISTEN_ADDR", defaultListenAddr),
		MigrationsDir: envOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
		ChannelID:     envOrDefault("CHANNEL_ID", defaultChannelID),
		ChannelKey:    envOrDefault("CHANNEL_KEY", defaultChannelKey),
	}, nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

// normalizeConnectionString accepts the semicolon-delimited connection-string
// form used by our deployment tooling and rewrites it into libpq key/value
// form. A string already in libpq form passes through untouched.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
