package models

import "time"

type EventType string

const (
	EventDatasetLoaded  EventType = "dataset.loaded"
	EventDatasetCleared EventType = "dataset.cleared"
	EventGoalsUpdated   EventType = "goals.updated"
)

// DatasetEvent is published after the held dataset changes.
type DatasetEvent struct {
	Type    EventType `json:"type"`
	BatchID string    `json:"batchId,omitempty"`
	Source  string    `json:"source,omitempty"`
	Records int       `json:"records"`
	Goals   *Goals    `json:"goals,omitempty"`
	At      time.Time `json:"at"`
}
