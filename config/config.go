package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("SMOOTHBLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("SMOOTHBLOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("SMOOTHBLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "instance"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("SMOOTHBLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "instance"
	}
	return logFolderPath
}

// GetSecretKey returns the key used to sign session cookies. The server
// refuses to start without one, so there is no default.
func GetSecretKey() string {
	return os.Getenv("SMOOTHBLOG_SECRET_KEY")
}

func GetListen() string {
	return os.Getenv("SMOOTHBLOG_LISTEN")
}

func GetPort() int {
	port := os.Getenv("SMOOTHBLOG_PORT")
	if port == "" {
		return 5000
	}
	var p int
	if _, err := fmt.Sscanf(port, "%d", &p); err != nil || p <= 0 {
		return 5000
	}
	return p
}

func GetAdminEmail() string {
	email := os.Getenv("SMOOTHBLOG_ADMIN_EMAIL")
	if email == "" {
		email = "admin@email.com"
	}
	return email
}

func GetAdminUsername() string {
	username := os.Getenv("SMOOTHBLOG_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	return username
}

func GetAdminPassword() string {
	password := os.Getenv("SMOOTHBLOG_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	return password
}
