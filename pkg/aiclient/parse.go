package aiclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"fitspace/pkg/utils"
)

var requiredPlanKeys = []string{"fitnessPlan", "dietPlan", "requiredEquipment", "shoppingList"}

// CleanJSONResponse strips the markdown code fences some models wrap their
// output in, despite being told not to.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

// ParsePlanPayload parses provider output into an opaque payload tree and
// checks that the four mandatory top-level keys are present. Nested shape is
// deliberately not validated: the generative content is the product, and
// rejecting it on schema nitpicks would throw away useful plans.
func ParsePlanPayload(text string) (map[string]any, error) {
	cleaned := CleanJSONResponse(text)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}

	for _, key := range requiredPlanKeys {
		if _, ok := payload[key]; !ok {
			return nil, fmt.Errorf("%w: %s", utils.ErrSchemaViolation, key)
		}
	}

	return payload, nil
}
