package app

import "context"

// FallbackText is returned by generators on any backend failure. The store
// treats it exactly like a normal assistant reply.
const FallbackText = "Texnik xatolik yuz berdi. Qayta urinib ko'ring."

// Attachment is an uploaded image: base64-encoded bytes plus the MIME type
// reported by the boundary that produced it.
type Attachment struct {
	Data     string
	MIMEType string
}

// DataURI renders the attachment as an inline data URI for display.
func (a Attachment) DataURI() string {
	return "data:" + a.MIMEType + ";base64," + a.Data
}

// LatLng is a best-effort user location used as retrieval bias on map-tool
// calls.
type LatLng struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// HistoryTurn is one prior exchange passed to the backend.
type HistoryTurn struct {
	Role    Role
	Content string
}

type GenerateRequest struct {
	Prompt     string
	History    []HistoryTurn
	Mood       Mood
	Attachment *Attachment
	Location   *LatLng
}

// GenerateResult is what the application receives back. ImageURL is a data
// URI when the backend produced an image; GroundingSources is non-empty when
// a search or map tool grounded the answer.
type GenerateResult struct {
	Text             string
	ImageURL         string
	GroundingSources []GroundingSource
}

// Generator produces one assistant reply per call. Implementations must not
// return an application-visible error: on failure they reply with
// FallbackText instead.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) GenerateResult
}
