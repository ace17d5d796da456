package signupcheck

import (
	"fmt"
	"os"

	"github.com/okian/activities/pkg/logger"
)

// SetupLogging initializes the global logger for the CLI.
func SetupLogging(format string, verbose bool) error {
	if err := logger.InitWithFormat(format); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the signup check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Activities Signup Check
=======================

Drives a running activities service with concurrent signup and unregister
round trips, then verifies the registry contents.

Usage:
  go run ./cmd/signup-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -students int
        Number of synthetic students to enroll (default 200)
  -workers int
        Maximum concurrent requests (default CPU cores * 2)
  -activity string
        Comma separated activities to target (default: all)
  -domain string
        Email domain for synthetic students (default "mergington.edu")
  -timeout duration
        HTTP request timeout (default 10s)
  -log-format string
        text or json (default "text")
  -verbose
        Log every request
  -help
        Show this help message

Examples:
  go run ./cmd/signup-check -students 1000 -workers 32
  go run ./cmd/signup-check -activity "Chess Club,Art Club" -verbose
`)
}
