package journey

// fallbackSegments is the hand-authored journey used when generation fails.
// Five phases covering a generic event arc from arrival to send-off.
var fallbackSegments = []Segment{
	{
		Timepoint:   "Arrival",
		Emotion:     "Anticipation",
		Description: "Guests arrive and get their first impression of the event space.",
		Elements:    "Welcome signage, greeters, ambient music, soft lighting at the entrance",
		Transitions: "Guide guests toward the main area with directional cues and staff prompts",
	},
	{
		Timepoint:   "Main Event Beginning",
		Emotion:     "Engagement",
		Description: "The program opens and attention converges on the main stage or host.",
		Elements:    "Opening remarks, a lighting shift, an energetic host, clear sightlines",
		Transitions: "Hand off from the opening into the core content without dead air",
	},
	{
		Timepoint:   "Core Experience",
		Emotion:     "Immersion",
		Description: "Guests are fully absorbed in the central activity of the event.",
		Elements:    "Interactive activities, themed decor, food and drink service, shared experiences",
		Transitions: "Build pacing gradually so energy rises toward the peak moment",
	},
	{
		Timepoint:   "Peak Moment",
		Emotion:     "Elevation",
		Description: "The emotional high point every other phase has been building toward.",
		Elements:    "A reveal, toast, performance, or ceremony with concentrated production value",
		Transitions: "Let the moment land, then ease the room into a reflective close",
	},
	{
		Timepoint:   "Conclusion",
		Emotion:     "Reflection & Connection",
		Description: "Guests wind down, connect with each other, and depart with a lasting impression.",
		Elements:    "Farewell gifts, softer music, open conversation space, thank-you messaging",
		Transitions: "Close warmly with clear cues that the event is ending",
	},
}

// FallbackJourney returns the canned journey truncated to the requested
// segment count. It never extends past its five authored entries, even when
// more segments were requested; callers get at most five.
func FallbackJourney(segmentCount int) []Segment {
	n := len(fallbackSegments)
	if segmentCount < n {
		n = segmentCount
	}
	if n < 0 {
		n = 0
	}
	out := make([]Segment, n)
	copy(out, fallbackSegments[:n])
	return out
}
