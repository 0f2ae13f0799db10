package request

import "strings"

// DateLayout is the calendar-day format requests are stamped with.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusClosed     Status = "Closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Request is one IT service ticket. The id and createdOn fields are assigned
// by the repository at creation time and never change afterwards. createdOn
// is kept as a raw day string so that hydrated legacy values the aggregator
// cannot parse still round-trip unchanged.
type Request struct {
	id          string
	category    string
	priority    Priority
	status      Status
	description string
	createdOn   string
}

func New(category string, priority Priority, description string) Request {
	return Request{
		category:    strings.TrimSpace(category),
		priority:    priority,
		status:      StatusOpen,
		description: strings.TrimSpace(description),
	}
}

func Hydrate(
	id string,
	category string,
	priority Priority,
	status Status,
	description string,
	createdOn string,
) Request {
	return Request{
		id:          id,
		category:    strings.TrimSpace(category),
		priority:    priority,
		status:      status,
		description: strings.TrimSpace(description),
		createdOn:   createdOn,
	}
}

func (r Request) ID() string          { return r.id }
func (r Request) Category() string    { return r.category }
func (r Request) Priority() Priority  { return r.priority }
func (r Request) Status() Status      { return r.status }
func (r Request) Description() string { return r.description }
func (r Request) CreatedOn() string   { return r.createdOn }
func (r Request) IsZero() bool        { return r.id == "" && r.category == "" }
