package models

import (
	"fmt"
	"image/color"
	"time"
)

const (
	OutcomeSuccess          = "success"
	OutcomeMissingSource    = "missing_source"
	OutcomeInvalidSourceURL = "invalid_source_url"
	OutcomeFetchOrTransform = "fetch_or_transform"
)

// Outcomes lists every counter the stats service tracks.
var Outcomes = []string{
	OutcomeSuccess,
	OutcomeMissingSource,
	OutcomeInvalidSourceURL,
	OutcomeFetchOrTransform,
}

type PixelResult struct {
	Source       string
	DataURL      string
	Color        color.NRGBA
	SourceWidth  int
	SourceHeight int
	SourceFormat string
	FetchedBytes int
}

// Hex renders the pixel as #rrggbbaa.
func (r *PixelResult) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", r.Color.R, r.Color.G, r.Color.B, r.Color.A)
}

type PixelEvent struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Color        string    `json:"color"`
	DataURL      string    `json:"data_url"`
	SourceWidth  int       `json:"source_width"`
	SourceHeight int       `json:"source_height"`
	SourceFormat string    `json:"source_format"`
	ProcessedAt  time.Time `json:"processed_at"`
}
