package signupcheck

import "time"

// Config holds configuration for a signup check run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Students   int           // Number of synthetic students to enroll
	Workers    int           // Maximum concurrent requests
	Timeout    time.Duration // HTTP request timeout
	Activities []string      // Activities to target; empty means all
	Domain     string        // Email domain for synthetic students
	Verbose    bool          // Log every request
}

// Activity mirrors one entry of GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Enrollment pairs a synthetic student with the activity they join.
type Enrollment struct {
	Activity string
	Email    string
}

// Stats holds run statistics.
type Stats struct {
	Signups            int
	DuplicatesRejected int
	Unregistrations    int
	AbsentRejected     int
	Failed             int
	ActivitiesTargeted int
	ParticipantsBefore int
	ParticipantsAfter  int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
