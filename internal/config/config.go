package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPlayers is the roster shown when nothing else is configured.
var DefaultPlayers = []string{
	"Walrus Boots",
	"OgFragnetism",
	"Slimbo TDS",
	"THE GOOOOOOOSE",
	"ZOMBIE IC",
	"ShaneVersionOne",
}

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Store
	Dialect     string
	DatabaseURL string
	Schema      string

	// Roster allow-list
	SelectedPlayers []string
	RosterFile      string
	RedisURL        string
	RosterRedisKey  string

	// Presentation
	PageSize int
	Title    string
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		Dialect: strings.ToLower(getEnv("DB_DIALECT", "postgres")),
		Schema:  getEnv("DB_SCHEMA", "public"),

		RosterFile:     os.Getenv("ROSTER_FILE"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RosterRedisKey: getEnv("ROSTER_REDIS_KEY", "league:selected_players"),

		PageSize: getEnvInt("PAGE_SIZE", 10),
		Title:    getEnv("DASHBOARD_TITLE", "Halo Rec League Stats"),
	}

	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))

	cfg.SelectedPlayers = DefaultPlayers
	if raw, ok := os.LookupEnv("SELECTED_PLAYERS"); ok {
		cfg.SelectedPlayers = splitList(raw)
	}
	if cfg.RosterFile != "" {
		players, err := LoadRosterFile(cfg.RosterFile)
		if err != nil {
			return nil, err
		}
		cfg.SelectedPlayers = players
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	// Critical configuration - fail if missing
	if cfg.Dialect == "postgres" && os.Getenv("DATABASE_URL") == "" {
		cfg.DatabaseURL = postgresURLFromPGEnv()
	}
	if cfg.DatabaseURL == "" {
		var err error
		if cfg.DatabaseURL, err = getEnvRequired("DATABASE_URL"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// postgresURLFromPGEnv composes a connection URL from the libpq variables
// PGHOST, PGUSER, PGPASSWORD and PGDATABASE. It returns "" when PGHOST is unset.
func postgresURLFromPGEnv() string {
	host := os.Getenv("PGHOST")
	if host == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + os.Getenv("PGDATABASE"),
	}
	if user := os.Getenv("PGUSER"); user != "" {
		if pass, ok := os.LookupEnv("PGPASSWORD"); ok {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	return u.String()
}

type rosterFile struct {
	Players []string `yaml:"players"`
}

// LoadRosterFile reads a YAML file of the form
//
//	players:
//	  - Walrus Boots
//	  - OgFragnetism
func LoadRosterFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	players := make([]string, 0, len(rf.Players))
	for _, p := range rf.Players {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			players = append(players, trimmed)
		}
	}
	return players, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
