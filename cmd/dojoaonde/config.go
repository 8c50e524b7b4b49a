package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/dojoaonde/internal/services"
)

const minSecretKeyLength = 32

var placeholderSecrets = map[string]bool{
	"change_me_in_production":                    true,
	"replace_with_at_least_32_random_characters": true,
}

type config struct {
	secretKey       string
	port            string
	dbPath          string
	location        *time.Location
	defaultLanguage string
	cookieSecure    bool
	editPolicy      services.DojoEditPolicy
	logLevel        string
	logFormat       string
}

func loadConfig() (config, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return config{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return config{}, err
	}
	editPolicy, err := services.ParseDojoEditPolicy(os.Getenv("DOJO_EDIT_POLICY"))
	if err != nil {
		return config{}, err
	}

	return config{
		secretKey:       secretKey,
		port:            port,
		dbPath:          resolveDBPath(),
		location:        mustLoadLocation(getEnv("TZ", "UTC"), slog.Default()),
		defaultLanguage: getEnv("DEFAULT_LANGUAGE", "pt"),
		cookieSecure:    cookieSecure,
		editPolicy:      editPolicy,
		logLevel:        getEnv("LOG_LEVEL", "info"),
		logFormat:       getEnv("LOG_FORMAT", "text"),
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if placeholderSecrets[strings.ToLower(secret)] {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(os.Getenv("PORT"))
	if raw == "" {
		return "8080", nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveDBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "dojoaonde.db"))
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}

func mustLoadLocation(name string, logger *slog.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid TZ, falling back to UTC", "tz", name, "error", err)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
