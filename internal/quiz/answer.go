// Package quiz poses set-algebra questions, reads free-text answers and
// judges them against a precomputed correct answer.
package quiz

import (
	"github.com/abhisek/vennquiz/internal/normalize"
	"github.com/abhisek/vennquiz/internal/sets"
)

// AnswerKind discriminates the two shapes a correct answer can take.
type AnswerKind int

const (
	// KindSet answers are a list of entities, typed comma or semicolon
	// separated, compared as a set.
	KindSet AnswerKind = iota

	// KindScalar answers are a single token such as "sim" or "não".
	KindScalar
)

// AnswerSpec is the correct answer of a question, tagged with its kind at
// construction time.
type AnswerSpec struct {
	kind   AnswerKind
	set    sets.Set[string]
	scalar string
}

// SetAnswer builds a set-valued answer.
func SetAnswer(s sets.Set[string]) AnswerSpec {
	return AnswerSpec{kind: KindSet, set: s}
}

// ScalarAnswer builds a single-token answer.
func ScalarAnswer(s string) AnswerSpec {
	return AnswerSpec{kind: KindScalar, scalar: s}
}

// Kind returns the answer kind.
func (a AnswerSpec) Kind() AnswerKind { return a.kind }

// Set returns the expected members of a set-valued answer.
func (a AnswerSpec) Set() sets.Set[string] { return a.set }

// Scalar returns the expected token of a scalar answer.
func (a AnswerSpec) Scalar() string { return a.scalar }

// Verdict is the result of judging one attempt.
type Verdict int

const (
	Incorrect Verdict = iota
	Correct
)

func (v Verdict) String() string {
	if v == Correct {
		return "correct"
	}
	return "incorrect"
}

// Check judges a raw answer line against the expected answer.
//
// Set answers: the line is split on commas and semicolons, blank entries are
// dropped and each entry is normalized; the resulting set must equal the
// normalized expected set. Order and repetition don't matter.
//
// Scalar answers: the normalized line must equal the normalized token.
//
// Malformed input is never an error, it is just Incorrect.
func Check(input string, answer AnswerSpec) Verdict {
	switch answer.kind {
	case KindSet:
		got := sets.New(normalize.Tokens(input)...)
		want := sets.Map(answer.set, normalize.String)
		if got.Equal(want) {
			return Correct
		}
	case KindScalar:
		if normalize.String(input) == normalize.String(answer.scalar) {
			return Correct
		}
	}
	return Incorrect
}
