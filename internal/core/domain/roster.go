package domain

import (
	"errors"
	"time"
)

var ErrRosterEntryNotFound = errors.New("roster entry not found")
var ErrUnknownRosterKind = errors.New("unknown roster kind")

// RosterKind selects one of the two per-user roster collections.
type RosterKind string

const (
	RosterPatients RosterKind = "patients"
	RosterStaff    RosterKind = "staff"
)

// ParseRosterKind validates a kind taken from a URL path segment.
func ParseRosterKind(s string) (RosterKind, error) {
	switch RosterKind(s) {
	case RosterPatients, RosterStaff:
		return RosterKind(s), nil
	default:
		return "", ErrUnknownRosterKind
	}
}

// RosterEntry is a persisted patient or staff record owned by a single user
// code. Unlike the admission directory this data lives in MongoDB and is
// mirrored to watchers in real time.
type RosterEntry struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	OwnerCode string     `json:"-" bson:"owner_code"`
	Kind      RosterKind `json:"-" bson:"kind"`
	Name      string     `json:"name" bson:"name"`
	Cedula    string     `json:"cedula,omitempty" bson:"cedula,omitempty"`
	Role      string     `json:"role,omitempty" bson:"role,omitempty"`
	Specialty string     `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Birthdate string     `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Gender    string     `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// RosterSnapshot is a full-list replacement event delivered to watchers.
// Consumers replace their entire local view with Entries; snapshots are never
// incremental patches, so redelivery is harmless.
type RosterSnapshot struct {
	OwnerCode string        `json:"-"`
	Kind      RosterKind    `json:"kind"`
	Entries   []RosterEntry `json:"entries"`
}
