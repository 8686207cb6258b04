package vizdot

import (
	"math"
	"sort"
	"strings"

	"github.com/arvonis/epiunfold/epmodel"
	"github.com/arvonis/epiunfold/game"
)

// edgeStyles and edgeColors cycle across players when rendering
// indistinguishability edges.
var (
	edgeStyles = []string{"dashed", "dotted", "bold"}
	edgeColors = []string{"red", "blue", "darkgreen", "purple4"}
)

func styleFor(player int) string { return edgeStyles[player%len(edgeStyles)] }
func colorFor(player int) string { return edgeColors[player%len(edgeColors)] }

// quoteDOT quotes and escapes a DOT identifier or label.
func quoteDOT(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// formatActionLabel sorts actionStrs and joins them with ", ", wrapping to
// a new line every ceil(sqrt(n)) entries.
func formatActionLabel(actionStrs []string) string {
	if len(actionStrs) == 0 {
		return ""
	}
	sorted := append([]string(nil), actionStrs...)
	sort.Strings(sorted)

	wrap := int(math.Ceil(math.Sqrt(float64(len(sorted)))))
	var b strings.Builder
	b.WriteString(sorted[0])
	for i := 1; i < len(sorted); i++ {
		b.WriteByte(',')
		if i%wrap == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(sorted[i])
	}
	return b.String()
}

// jointActionLabel formats a single joint action as "(a0,a1,...)".
func jointActionLabel(ja game.JointAction) string {
	return "(" + strings.Join(ja, ",") + ")"
}

// assignmentLabels formats every joint-action assignment in assignments as
// "|"-joined per-history joint-action labels, one string per assignment.
func assignmentLabels(assignments []epmodel.Assignment) []string {
	out := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		parts := make([]string, len(assignment))
		for i, ja := range assignment {
			parts[i] = jointActionLabel(ja)
		}
		out = append(out, strings.Join(parts, "|"))
	}
	return out
}
