package mood

import "fmt"

// Request carries the parameters for a weather-mood adaptation.
type Request struct {
	EventType        string   `json:"eventType"`
	WeatherCondition string   `json:"weatherCondition"`
	Temperature      float64  `json:"temperature"`
	VenueType        string   `json:"venueType"`
	PlannedElements  []string `json:"plannedElements"`
}

// MissingParameterError mirrors the journey endpoint's validation failure.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing required parameter: %s", e.Field)
}

// Validate checks required fields in order: eventType, then weatherCondition.
func (r *Request) Validate() error {
	if r.EventType == "" {
		return &MissingParameterError{Field: "eventType"}
	}
	if r.WeatherCondition == "" {
		return &MissingParameterError{Field: "weatherCondition"}
	}
	return nil
}

// Adaptation is one suggested adjustment to the event for the given weather.
type Adaptation struct {
	Aspect     string `json:"aspect"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

// Metadata describes the request an adaptation set was generated for.
type Metadata struct {
	EventType        string `json:"eventType"`
	WeatherCondition string `json:"weatherCondition"`
	GeneratedAt      string `json:"generatedAt"`
	Error            string `json:"error,omitempty"`
}

// Result is the adaptation envelope returned to the caller.
type Result struct {
	Metadata    Metadata     `json:"metadata"`
	Adaptations []Adaptation `json:"adaptations"`
}

// FallbackAdaptations returns the canned weather-neutral suggestions used
// when generation fails.
func FallbackAdaptations() []Adaptation {
	return []Adaptation{
		{
			Aspect:     "Lighting",
			Suggestion: "Shift to warmer indoor lighting and add accent uplights.",
			Reason:     "Warm light counteracts gloomy exterior conditions and keeps energy up.",
		},
		{
			Aspect:     "Music",
			Suggestion: "Raise tempo slightly during arrival and transitions.",
			Reason:     "Upbeat arrival music offsets low-energy weather moods.",
		},
		{
			Aspect:     "Layout",
			Suggestion: "Keep a covered or indoor route between key areas.",
			Reason:     "Guests stay comfortable moving between phases regardless of conditions.",
		},
		{
			Aspect:     "Refreshments",
			Suggestion: "Match drinks to the temperature: warm options below 15°C, chilled above 25°C.",
			Reason:     "Temperature-appropriate refreshments are the fastest comfort lever.",
		},
	}
}
