package quiz

import (
	"strings"

	"github.com/abhisek/vennquiz/internal/sets"
)

// Operation names the set operation a question exercises.
type Operation string

const (
	OpUnion        Operation = "union"
	OpIntersection Operation = "intersection"
	OpDifference   Operation = "difference"
	OpComplement   Operation = "complement"
	OpSubset       Operation = "subset"
	OpMembership   Operation = "membership"
)

// Question is one quiz item.
type Question struct {
	Title       string
	Prompt      string
	Answer      AnswerSpec
	Explanation string
	Operation   Operation

	// Diagram, when set, asks for a two-set diagram to be shown after the
	// question is answered.
	Diagram *DiagramRequest
}

// DiagramRequest describes the two-set diagram that illustrates a question.
type DiagramRequest struct {
	Left, Right           sets.Set[string]
	LeftLabel, RightLabel string
	Title                 string
}

// FormatSet renders s as "{a, b, c}" in sorted order, or "∅" when empty.
func FormatSet(s sets.Set[string]) string {
	if s.Len() == 0 {
		return "∅"
	}
	return "{" + strings.Join(sets.Sorted(s), ", ") + "}"
}
