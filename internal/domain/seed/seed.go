// Package seed provides the catalog the registry starts with: the built-in
// Mergington activities or a YAML/JSON seed file validated against a schema.
package seed

import "github.com/okian/activities/internal/domain/model"

// Default returns a fresh copy of the built-in catalog. Every call returns
// independent slices so callers may mutate the result.
func Default() model.Catalog {
	return model.Catalog{
		"Soccer": {
			Description:     "Team sport focusing on soccer skills and competitive matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Basketball": {
			Description:     "Basketball training and intramural games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop public speaking and critical thinking skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"sarah@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science and engineering challenges",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Participate in theatrical productions and acting workshops",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}.Clone()
}
