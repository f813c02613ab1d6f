package models

import "time"

// Snapshot is the persisted form of a loaded dataset.
type Snapshot struct {
	BatchID  string            `json:"batchId"`
	Source   string            `json:"source"`
	LoadedAt time.Time         `json:"loadedAt"`
	Records  []CanonicalRecord `json:"records"`
	Goals    Goals             `json:"goals"`
}
