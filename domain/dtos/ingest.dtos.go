package dtos

import (
	"time"

	"github.com/init-pkg/rework-tracker/domain/models"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-facing message. Errors stay on screen longer.
type Notice struct {
	Level          NoticeLevel `json:"level"`
	Text           string      `json:"text"`
	DismissAfterMs int64       `json:"dismissAfterMs"`
}

func NewNotice(level NoticeLevel, text string) Notice {
	d := 4 * time.Second
	if level == NoticeError {
		d = 10 * time.Second
	}
	return Notice{Level: level, Text: text, DismissAfterMs: d.Milliseconds()}
}

type IngestStatus string

const (
	IngestLoaded    IngestStatus = "loaded"
	IngestGoalsOnly IngestStatus = "goals_only"
	IngestCleared   IngestStatus = "cleared"
	IngestFailed    IngestStatus = "failed"
)

// IngestOutcome reports one upload. Kind is set only when Status is failed.
type IngestOutcome struct {
	Status       IngestStatus `json:"status"`
	Kind         string       `json:"kind,omitempty"`
	FileName     string       `json:"fileName"`
	BatchID      string       `json:"batchId,omitempty"`
	Records      int          `json:"records"`
	SheetName    string       `json:"sheetName,omitempty"`
	HeaderRow    int          `json:"headerRow"`
	GoalsUpdated bool         `json:"goalsUpdated"`
	Goals        models.Goals `json:"goals"`
	Persisted    bool         `json:"persisted"`
	Warnings     []string     `json:"warnings,omitempty"`
	Notice       Notice       `json:"notice"`
}

type DatasetInfo struct {
	Loaded    bool         `json:"loaded"`
	Records   int          `json:"records"`
	BatchID   string       `json:"batchId,omitempty"`
	Source    string       `json:"source,omitempty"`
	LoadedAt  *time.Time   `json:"loadedAt,omitempty"`
	Goals     models.Goals `json:"goals"`
	Locations []string     `json:"locations"`
}

type ErrorResponse struct {
	Error  string  `json:"error"`
	Kind   string  `json:"kind,omitempty"`
	Notice *Notice `json:"notice,omitempty"`
}
