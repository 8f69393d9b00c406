//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// EventType categorizes a career-fair event. The set mirrors the upstream API.
type EventType string

const (
	EventTypeCareerFair   EventType = "CAREER_FAIR"
	EventTypeNetworking   EventType = "NETWORKING_EVENT"
	EventTypePresentation EventType = "PRESENTATION"
)

// EventTypes lists all supported event types in display order.
func EventTypes() []EventType {
	return []EventType{EventTypeCareerFair, EventTypeNetworking, EventTypePresentation}
}

// Valid reports whether the event type is supported.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeCareerFair, EventTypeNetworking, EventTypePresentation:
		return true
	default:
		return false
	}
}

// ParseEventType normalizes an event type string and reports whether it is supported.
func ParseEventType(value string) (EventType, bool) {
	t := EventType(strings.ToUpper(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// Event is a career-fair event as served by the upstream API.
// EventDate uses the upstream wire format "2006-01-02"; EventTime is "15:04".
type Event struct {
	EventID      int64     `json:"eventId"`
	EventName    string    `json:"eventName"`
	EventType    EventType `json:"eventType"`
	EventDate    string    `json:"eventDate"`
	EventTime    string    `json:"eventTime"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Capacity     int       `json:"capacity"`
	NumAttendees int       `json:"numAttendees"`
	OutOfDate    bool      `json:"outOfDate"`
}

// Full reports whether the event has reached capacity.
func (e Event) Full() bool {
	return e.Capacity > 0 && e.NumAttendees >= e.Capacity
}

// Attendable reports whether a student may still sign up.
func (e Event) Attendable() bool {
	return !e.Full() && !e.OutOfDate
}

// Date parses EventDate. The zero time is returned for unparseable dates so
// sorting degrades gracefully instead of failing the whole listing.
func (e Event) Date() time.Time {
	d, err := time.Parse("2006-01-02", e.EventDate)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Matches reports whether the event matches a free-text search over
// name, type, and location (case-insensitive substring).
func (e Event) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.EventName), q) ||
		strings.Contains(strings.ToLower(string(e.EventType)), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}

// CreateEventRequest is the payload for creating an event upstream.
type CreateEventRequest struct {
	EventName   string    `json:"eventName"`
	EventType   EventType `json:"eventType"`
	EventDate   string    `json:"eventDate"`
	EventTime   string    `json:"eventTime"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
}

// EventListOptions controls filtering and ordering of the events table.
// Notes:
//   - Sort supports: "name", "date", "capacity", "attendees" (case-insensitive).
//   - Dir supports: "asc", "desc"; empty means the listing's natural order.
//   - Q matches name/type/location via case-insensitive substring.
type EventListOptions struct {
	Q    string
	Type *EventType
	Sort string
	Dir  string
}
