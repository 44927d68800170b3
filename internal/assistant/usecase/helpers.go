package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"travel-planning-assistant/internal/assistant"
	"travel-planning-assistant/pkg/llmprovider"
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// isExhausted reports whether the error means the whole model chain failed.
func isExhausted(err error) bool {
	return errors.Is(err, llmprovider.ErrAllProvidersFailed)
}

// mapModelErr translates chain exhaustion into the domain error callers
// are expected to match on; other errors pass through.
func mapModelErr(err error) error {
	if isExhausted(err) {
		return fmt.Errorf("%w: %v", assistant.ErrModelUnavailable, err)
	}
	return err
}

// historyLines renders turns as "role: text" lines for the classifier.
func historyLines(turns []assistant.Turn) []string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, t.Role+": "+t.Text)
	}
	return lines
}

// formatFindings renders agent outcomes for the synthesis prompt:
// successful outputs in full, failed agents as a skip note so the model
// does not invent their answers. Empty when no agents were consulted.
func formatFindings(outcomes []agentOutcome) string {
	if len(outcomes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(PromptAgentFindingsHeader)

	var skipped []string
	for _, oc := range outcomes {
		if oc.Err != nil {
			skipped = append(skipped, oc.Agent)
			continue
		}
		fmt.Fprintf(&b, "-- %s --\n%s\n\n", oc.Agent, oc.Result.Text)
	}
	for _, name := range skipped {
		fmt.Fprintf(&b, "Note: %s was consulted but could not answer this time.\n", name)
	}
	b.WriteString("\n")
	return b.String()
}

// splitOutcomes separates agents that answered from agents that errored.
func splitOutcomes(outcomes []agentOutcome) (consulted, failed []string) {
	for _, oc := range outcomes {
		if oc.Err != nil {
			failed = append(failed, oc.Agent)
			continue
		}
		consulted = append(consulted, oc.Agent)
	}
	return consulted, failed
}
