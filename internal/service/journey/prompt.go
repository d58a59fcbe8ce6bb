package journey

import (
	"fmt"
	"strings"

	"github.com/eventure-app/eventure/backend/internal/model/journey"
)

// systemPrompt establishes the model's persona for journey generation.
const systemPrompt = "You are an expert event designer specializing in emotional experience mapping. " +
	"You design how an audience should feel at each phase of an event and how to move them " +
	"between those feelings. Respond with JSON only, no surrounding prose."

// Defaults substituted for optional request fields left empty.
const (
	defaultAudienceDetails = "General audience"
	noKeyMoments           = "None specified"
	noDesiredEmotions      = "Not specified"
)

// BuildPrompt assembles the generation instruction for a validated request.
// The output is deterministic for a given request and segment count so the
// same input always produces the same model instruction.
func BuildPrompt(req journey.Request, segmentCount int) string {
	audienceDetails := strings.TrimSpace(req.AudienceDetails)
	if audienceDetails == "" {
		audienceDetails = defaultAudienceDetails
	}

	keyMoments := joinOrDefault(req.KeyMoments, noKeyMoments)
	desiredEmotions := joinOrDefault(req.DesiredEmotions, noDesiredEmotions)

	var b strings.Builder
	b.WriteString("Create an emotional journey map for the following event:\n\n")
	b.WriteString(fmt.Sprintf("Event type: %s\n", req.EventType))
	b.WriteString(fmt.Sprintf("Duration: %g hours\n", req.EventDuration))
	b.WriteString(fmt.Sprintf("Audience size: %g\n", req.AudienceSize))
	b.WriteString(fmt.Sprintf("Audience details: %s\n", audienceDetails))
	b.WriteString(fmt.Sprintf("Event goals: %s\n", req.EventGoals))
	b.WriteString(fmt.Sprintf("Key moments: %s\n", keyMoments))
	b.WriteString(fmt.Sprintf("Desired emotions: %s\n\n", desiredEmotions))

	b.WriteString(fmt.Sprintf(
		"Divide the event into exactly %d chronological segments. ", segmentCount))
	b.WriteString("For each segment provide: a timepoint label, the primary target emotion, ")
	b.WriteString("a short description of the phase, concrete sensory or activity elements, ")
	b.WriteString("and how to transition into the next segment.\n\n")

	b.WriteString(`Return a JSON object of the form {"journey": [...]} where the array holds exactly `)
	b.WriteString(fmt.Sprintf("%d objects, each with the string fields ", segmentCount))
	b.WriteString(`"timepoint", "emotion", "description", "elements" and "transitions".`)

	return b.String()
}

func joinOrDefault(items []string, fallback string) string {
	var kept []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ", ")
}
