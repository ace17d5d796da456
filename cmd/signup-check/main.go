package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/okian/activities/internal/signupcheck"
	"github.com/okian/activities/pkg/logger"
)

// Default configuration constants.
const (
	defaultStudents = 200
	defaultWorkers  = 2 // multiplier for runtime.NumCPU()
	defaultTimeout  = 10 * time.Second
	defaultRunLimit = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8000", "Base URL of the service")
		students  = flag.Int("students", defaultStudents, "Number of synthetic students to enroll")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Maximum concurrent requests")
		activity  = flag.String("activity", "", "Comma separated activities to target (default: all)")
		domain    = flag.String("domain", signupcheck.DefaultDomain, "Email domain for synthetic students")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFormat = flag.String("log-format", logger.FormatText, "Log format: text or json")
		verbose   = flag.Bool("verbose", false, "Log every request")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		signupcheck.ShowHelp()
		return
	}

	if err := signupcheck.SetupLogging(*logFormat, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	cfg := &signupcheck.Config{
		BaseURL:    strings.TrimRight(*baseURL, "/"),
		Students:   *students,
		Workers:    *workers,
		Timeout:    *timeout,
		Activities: splitList(*activity),
		Domain:     *domain,
		Verbose:    *verbose,
	}

	if _, err := signupcheck.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "signup check failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
