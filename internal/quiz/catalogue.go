package quiz

import (
	"fmt"

	"github.com/abhisek/vennquiz/internal/facts"
	"github.com/abhisek/vennquiz/internal/sets"
)

// MembershipSubject is the entity the membership question asks about.
const MembershipSubject = "São Paulo"

// Scalar tokens of yes/no questions.
const (
	Yes = "sim"
	No  = "não"
)

// Standard builds the six questions of the exercise from f: union,
// intersection, difference, complement, subset and membership, in that
// order. f must declare categories A, B and C; the subset question is
// skipped when the southern group is absent.
func Standard(f *facts.Facts) ([]Question, error) {
	a, catA, err := category(f, facts.Automobile)
	if err != nil {
		return nil, err
	}
	b, catB, err := category(f, facts.Textile)
	if err != nil {
		return nil, err
	}
	c, catC, err := category(f, facts.Petrochemical)
	if err != nil {
		return nil, err
	}
	u := f.Universe()

	aUnionC := a.Union(c)
	aInterB := a.Intersect(b)
	bMinusC := b.Difference(c)
	notA := u.Difference(a)

	qs := []Question{
		{
			Title:       "Pergunta 1 - União",
			Prompt:      fmt.Sprintf("Quais estados pertencem a A ∪ C (%s OU %s)?", catA.Name, catC.Name),
			Answer:      SetAnswer(aUnionC),
			Explanation: "A ∪ C = " + FormatSet(aUnionC),
			Operation:   OpUnion,
			Diagram: &DiagramRequest{
				Left: a, Right: c,
				LeftLabel: catA.Name, RightLabel: catC.Name,
				Title: "União A ∪ C",
			},
		},
		{
			Title:       "Pergunta 2 - Interseção",
			Prompt:      fmt.Sprintf("Quais estados pertencem a A ∩ B (%s E %s)?", catA.Name, catB.Name),
			Answer:      SetAnswer(aInterB),
			Explanation: "A ∩ B = " + FormatSet(aInterB),
			Operation:   OpIntersection,
			Diagram: &DiagramRequest{
				Left: a, Right: b,
				LeftLabel: catA.Name, RightLabel: catB.Name,
				Title: "Interseção A ∩ B",
			},
		},
		{
			Title:       "Pergunta 3 - Diferença",
			Prompt:      fmt.Sprintf("Quais estados pertencem a B - C (%s mas NÃO %s)?", catB.Name, catC.Name),
			Answer:      SetAnswer(bMinusC),
			Explanation: "B - C = " + FormatSet(bMinusC),
			Operation:   OpDifference,
			Diagram: &DiagramRequest{
				Left: b, Right: c,
				LeftLabel: catB.Name, RightLabel: catC.Name,
				Title: "Diferença B - C",
			},
		},
		{
			Title:       "Pergunta 4 - Complementar",
			Prompt:      "Quais estados pertencem ao complementar de A (A')?",
			Answer:      SetAnswer(notA),
			Explanation: "A' = " + FormatSet(notA),
			Operation:   OpComplement,
		},
	}

	if south, ok := f.Group(facts.GroupSouth); ok {
		southInB := south.Intersect(b)
		qs = append(qs, Question{
			Title:       "Pergunta 5 - Subconjunto",
			Prompt:      fmt.Sprintf("O conjunto dos estados do %s que têm %s é subconjunto de B?", facts.GroupSouth, catB.Name),
			Answer:      SetAnswer(southInB),
			Explanation: fmt.Sprintf("%s ∩ B = %s ⊆ B", facts.GroupSouth, FormatSet(southInB)),
			Operation:   OpSubset,
		})
	}

	subject := membershipSubject(u)
	answer, symbol := No, "∉"
	if c.Contains(subject) {
		answer, symbol = Yes, "∈"
	}
	qs = append(qs, Question{
		Title:       fmt.Sprintf("Pergunta %d - Pertinência", len(qs)+1),
		Prompt:      fmt.Sprintf("O estado '%s' pertence ao conjunto C (%s)? (sim/não)", subject, catC.Name),
		Answer:      ScalarAnswer(answer),
		Explanation: fmt.Sprintf("%s %s C", subject, symbol),
		Operation:   OpMembership,
	})

	return qs, nil
}

func category(f *facts.Facts, key string) (sets.Set[string], facts.Category, error) {
	cat, ok := f.Category(key)
	if !ok {
		return nil, facts.Category{}, fmt.Errorf("fact table has no category %q", key)
	}
	s, _ := f.Set(key)
	return s, cat, nil
}

// membershipSubject falls back to the first entity in sorted order when the
// table does not contain MembershipSubject.
func membershipSubject(u sets.Set[string]) string {
	if u.Contains(MembershipSubject) {
		return MembershipSubject
	}
	return sets.Sorted(u)[0]
}
