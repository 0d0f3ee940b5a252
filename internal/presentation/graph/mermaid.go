// Package graph renders machine definitions as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/myg844/call-fsm/pkg/definition"
)

// Overlay contains dynamic machine state to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	ActiveState   string
}

// GenerateMermaid produces Mermaid flowchart syntax for a definition.
// The initial state renders as a ((circle)), every other state as a
// [rectangle]. Transition arrows carry the check hook name, and the done
// hook after a slash, when the definition names them. Overlay styles
// (visited/active) are applied if provided.
func GenerateMermaid(def *definition.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range def.States {
		safeID := sanitizeMermaidID(s.Name)

		opener, closer := "[", "]"
		if s.Name == def.Initial {
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s.Name, closer))
	}

	for _, t := range def.Transitions {
		safeFrom := sanitizeMermaidID(t.From)
		safeTo := sanitizeMermaidID(t.To)

		arrow := "-->"
		if label := transitionLabel(t); label != "" {
			// Escape double quotes for the Mermaid label
			safeLabel := strings.ReplaceAll(label, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", safeLabel)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeTo))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(name)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.ActiveState != "" {
			sb.WriteString(fmt.Sprintf("    class %s active;\n", sanitizeMermaidID(overlay.ActiveState)))
		}
	}

	return sb.String()
}

func transitionLabel(t definition.Transition) string {
	switch {
	case t.Check != "" && t.Done != "":
		return t.Check + " / " + t.Done
	case t.Check != "":
		return t.Check
	case t.Done != "":
		return "/ " + t.Done
	}
	return ""
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
