package replay

import "github.com/younwookim/arcade/internal/application/input"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the held actions for a single frame
type FrameInput struct {
	F int         `json:"f"`           // Frame number
	A input.State `json:"a,omitempty"` // Held action bits
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Game      string       `json:"game"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
