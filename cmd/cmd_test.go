package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/vennquiz/internal/facts"
	"github.com/abhisek/vennquiz/internal/quadratic"
	"github.com/abhisek/vennquiz/internal/quiz"
	"github.com/abhisek/vennquiz/internal/sets"
	"github.com/abhisek/vennquiz/internal/venn"
)

type shown struct {
	title, body string
}

type recordingSurface struct {
	shows []shown
}

func (s *recordingSurface) Show(title, body string) error {
	s.shows = append(s.shows, shown{title, body})
	return nil
}

// correctAnswers builds stdin that answers every standard question right
// on the first try.
func correctAnswers(t *testing.T, f *facts.Facts) string {
	t.Helper()
	questions, err := quiz.Standard(f)
	require.NoError(t, err)

	var b strings.Builder
	for _, q := range questions {
		if q.Answer.Kind() == quiz.KindSet {
			b.WriteString(strings.Join(sets.Sorted(q.Answer.Set()), ", "))
		} else {
			b.WriteString(q.Answer.Scalar())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func newQuizRun(t *testing.T, input string, surface *recordingSurface, out *bytes.Buffer) quizRun {
	t.Helper()
	f, err := facts.Build(facts.Brazil())
	require.NoError(t, err)
	return quizRun{
		in:      strings.NewReader(input),
		out:     out,
		facts:   f,
		surface: surface,
		cfg:     quiz.DefaultConfig(),
		log:     zap.NewNop(),
	}
}

func TestQuizRun_AllCorrect(t *testing.T) {
	f := facts.MustBuild(facts.Brazil())
	surface := &recordingSurface{}
	var out bytes.Buffer

	r := newQuizRun(t, correctAnswers(t, f), surface, &out)
	require.NoError(t, r.run())

	require.Len(t, surface.shows, 4)
	assert.Equal(t, finalDiagramTitle, surface.shows[3].title)
	assert.Contains(t, surface.shows[3].body, "Automobilística (A)")

	transcript := out.String()
	assert.Contains(t, transcript, "DADOS DOS ESTADOS")
	assert.NotContains(t, transcript, "Incorreto")
	assert.Contains(t, transcript, "Perguntas respondidas: 6")
	assert.Contains(t, transcript, "de primeira: 6")
}

func TestQuizRun_InputClosedStopsGracefully(t *testing.T) {
	surface := &recordingSurface{}
	var out bytes.Buffer

	r := newQuizRun(t, "", surface, &out)
	require.NoError(t, r.run())

	assert.Empty(t, surface.shows)
	assert.Contains(t, out.String(), "(entrada encerrada)")
	assert.Contains(t, out.String(), "Perguntas respondidas: 0")
}

func TestHighlightFor(t *testing.T) {
	tests := []struct {
		op   quiz.Operation
		want venn.Highlight
	}{
		{quiz.OpUnion, venn.HighlightUnion},
		{quiz.OpIntersection, venn.HighlightIntersection},
		{quiz.OpDifference, venn.HighlightDifference},
		{quiz.OpComplement, venn.HighlightNone},
		{quiz.OpMembership, venn.HighlightNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, highlightFor(tt.op))
		})
	}
}

func TestAnalyzeQuadratic(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		input     string
		wantPlot  bool
		wantTitle string
	}{
		{"quadratic from args", []string{"1", "-3", "2"}, "", true, quadratic.PlotTitle(quadratic.Quadratic)},
		{"linear from stdin", nil, "0\n2\n1\n", true, quadratic.PlotTitle(quadratic.Linear)},
		{"comma decimal", nil, "1,5\n0\n0\n", true, quadratic.PlotTitle(quadratic.Quadratic)},
		{"indefinite is not plotted", []string{"0", "0", "0"}, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &recordingSurface{}
			var out bytes.Buffer

			err := analyzeQuadratic(strings.NewReader(tt.input), &out, tt.args, surface, zap.NewNop())
			require.NoError(t, err)
			assert.Contains(t, out.String(), "Função:")

			if !tt.wantPlot {
				assert.Empty(t, surface.shows)
				return
			}
			require.Len(t, surface.shows, 1)
			assert.Equal(t, tt.wantTitle, surface.shows[0].title)
		})
	}
}

func TestAnalyzeQuadratic_Prompts(t *testing.T) {
	var out bytes.Buffer
	err := analyzeQuadratic(strings.NewReader("1\n0\n-4\n"), &out, nil, &recordingSurface{}, zap.NewNop())
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, out.String(), "Digite o coeficiente "+name+": ")
	}
}

func TestAnalyzeQuadratic_BadInput(t *testing.T) {
	surface := &recordingSurface{}

	err := analyzeQuadratic(strings.NewReader(""), &bytes.Buffer{}, []string{"1", "dois", "3"}, surface, zap.NewNop())
	var inputErr *quadratic.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "b", inputErr.Name)
	assert.Empty(t, surface.shows)

	err = analyzeQuadratic(strings.NewReader("1\n"), &bytes.Buffer{}, nil, surface, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadFacts(t *testing.T) {
	f, err := loadFacts("")
	require.NoError(t, err)
	assert.Equal(t, 10, f.Universe().Len())

	_, err = loadFacts("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestAnalyzeQuadratic_OutOfRange(t *testing.T) {
	surface := &recordingSurface{}
	var out bytes.Buffer

	err := analyzeQuadratic(strings.NewReader(""), &out, []string{"1", "1e200", "0"}, surface, zap.NewNop())
	var rangeErr *quadratic.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Empty(t, surface.shows)
	assert.NotContains(t, out.String(), "Inf")
}

func TestAnalyzeQuadratic_HugeCoefficientPlots(t *testing.T) {
	surface := &recordingSurface{}

	err := analyzeQuadratic(strings.NewReader(""), &bytes.Buffer{}, []string{"-1e308", "0", "0"}, surface, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, surface.shows, 1)
}

func TestAnalyzeQuadratic_LongLine(t *testing.T) {
	input := strings.Repeat("9", 70000) + "x\n0\n0\n"

	err := analyzeQuadratic(strings.NewReader(input), &bytes.Buffer{}, nil, &recordingSurface{}, zap.NewNop())
	var inputErr *quadratic.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "a", inputErr.Name)
}

func TestPrintSets(t *testing.T) {
	var out bytes.Buffer
	printSets(&out, facts.MustBuild(facts.Brazil()))

	assert.Contains(t, out.String(), "U = {")
	assert.Contains(t, out.String(), "SP = São Paulo")
	assert.Contains(t, out.String(), "RJ = Rio de Janeiro")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, quiz.Summary{Questions: 4, Correct: 3, FirstTry: 2, Attempts: 7})

	assert.Contains(t, out.String(), "Perguntas respondidas: 4")
	assert.Contains(t, out.String(), "Corretas: 3 (de primeira: 2)")
	assert.Contains(t, out.String(), "Tentativas: 7")
	assert.Contains(t, out.String(), "50%")
}
