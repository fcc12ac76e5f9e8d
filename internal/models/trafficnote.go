package models

// TrafficNote is one service disruption notice from the feed's traffic
// section. Priority is empty when the feed omits it.
type TrafficNote struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}
