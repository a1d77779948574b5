package models

// PlayState tells listeners of the status bus what the session is doing.
type PlayState string

const (
	StatePlaying PlayState = "playing"
	StateStopped PlayState = "stopped"
)

// Status is the event emitted on every play/stop transition.
type Status struct {
	Source string    `json:"source"`
	Artist string    `json:"artist"`
	Track  string    `json:"track"`
	Image  string    `json:"image"`
	State  PlayState `json:"status"`
}

// Stopped returns the empty status emitted when playback ends.
func Stopped() Status {
	return Status{Source: "news-radio", State: StateStopped}
}
