// Package domain holds the prediction journal types and ports
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"veritas/internal/core/inference"
	"veritas/internal/core/model"
)

// Entry is one recorded prediction. The raw article is never stored, only its digest.
type Entry struct {
	ID           uuid.UUID
	RequestID    string
	TextSHA256   [32]byte
	RawChars     int
	CleanedChars int
	Label        int
	ProbReal     float64
	ProbFake     float64
	ModelID      string
	Surface      string
	CreatedAt    time.Time
}

// NewEntry builds an entry for raw and its prediction
func NewEntry(raw string, p inference.Prediction, reqID, surface string, now time.Time) Entry {
	return Entry{
		ID:           uuid.New(),
		RequestID:    reqID,
		TextSHA256:   sha256.Sum256([]byte(raw)),
		RawChars:     utf8.RuneCountInString(raw),
		CleanedChars: utf8.RuneCountInString(p.Cleaned),
		Label:        p.Label,
		ProbReal:     p.ProbReal(),
		ProbFake:     p.ProbFake(),
		ModelID:      p.ModelID,
		Surface:      surface,
		CreatedAt:    now.UTC(),
	}
}

// DigestHex returns the hex form of TextSHA256
func (e Entry) DigestHex() string { return hex.EncodeToString(e.TextSHA256[:]) }

// EntryDTO is the wire form of an entry
type EntryDTO struct {
	ID           string    `json:"id" example:"0b8f3c1e-1f6c-4bb1-9a35-7cf0b0a9e8d1"`
	RequestID    string    `json:"request_id,omitempty"`
	TextSHA256   string    `json:"text_sha256"`
	RawChars     int       `json:"raw_chars"`
	CleanedChars int       `json:"cleaned_chars"`
	Label        int       `json:"label" example:"1"`
	LabelName    string    `json:"label_name" example:"fake"`
	ProbReal     float64   `json:"prob_real"`
	ProbFake     float64   `json:"prob_fake"`
	ModelID      string    `json:"model_id"`
	Surface      string    `json:"surface,omitempty" example:"api"`
	CreatedAt    time.Time `json:"created_at"`
}

// DTO converts e to its wire form
func (e Entry) DTO() EntryDTO {
	return EntryDTO{
		ID:           e.ID.String(),
		RequestID:    e.RequestID,
		TextSHA256:   e.DigestHex(),
		RawChars:     e.RawChars,
		CleanedChars: e.CleanedChars,
		Label:        e.Label,
		LabelName:    model.LabelName(e.Label),
		ProbReal:     e.ProbReal,
		ProbFake:     e.ProbFake,
		ModelID:      e.ModelID,
		Surface:      e.Surface,
		CreatedAt:    e.CreatedAt,
	}
}

// Stats summarises the journal
type Stats struct {
	Total        int64      `json:"total"`
	Real         int64      `json:"real"`
	Fake         int64      `json:"fake"`
	MeanProbFake float64    `json:"mean_prob_fake"`
	FirstAt      *time.Time `json:"first_at,omitempty"`
	LastAt       *time.Time `json:"last_at,omitempty"`
}

// RecentInput is the query for the recent listing
type RecentInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=500"`
}

// Listing limits
const (
	DefaultLimit = 50
	MaxLimit     = 500
)
