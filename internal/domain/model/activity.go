// Package model contains domain models passed between layers.
package model

// Activity is a named extracurricular offering. MaxParticipants is a capacity
// hint; whether it is enforced is decided by the store configuration.
type Activity struct {
	Name            string   `json:"-" koanf:"-"`
	Description     string   `json:"description" koanf:"description"`
	Schedule        string   `json:"schedule" koanf:"schedule"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants"`
	Participants    []string `json:"participants" koanf:"participants"`
}

// Clone returns a deep copy. Participants is never nil on the copy so it
// always serializes as a JSON list.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is already signed up.
func (a Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

// IsFull reports whether the activity reached its capacity hint.
// Activities without a positive MaxParticipants are never full.
func (a Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

func (a Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// WithoutParticipant returns a copy of a with email removed, preserving the
// order of the remaining participants.
func (a Activity) WithoutParticipant(email string) Activity {
	out := a.Clone()
	if i := out.indexOf(email); i >= 0 {
		out.Participants = append(out.Participants[:i], out.Participants[i+1:]...)
	}
	return out
}

// Catalog maps activity name to activity. It is the read shape of
// GET /activities.
type Catalog map[string]Activity

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, a := range c {
		a.Name = name
		out[name] = a.Clone()
	}
	return out
}

// ParticipantCount returns the total number of signups across activities.
func (c Catalog) ParticipantCount() int {
	total := 0
	for _, a := range c {
		total += len(a.Participants)
	}
	return total
}
