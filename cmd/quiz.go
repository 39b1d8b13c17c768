package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vennquiz/internal/display"
	"github.com/abhisek/vennquiz/internal/facts"
	"github.com/abhisek/vennquiz/internal/quiz"
	"github.com/abhisek/vennquiz/internal/sets"
	"github.com/abhisek/vennquiz/internal/ui/components"
	"github.com/abhisek/vennquiz/internal/ui/theme"
	"github.com/abhisek/vennquiz/internal/venn"
)

const finalDiagramTitle = "Diagrama de Venn Final - Estados por Indústrias"

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the set-theory quiz (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func runQuiz(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync() //nolint:errcheck

	f, err := loadFacts(e.cfg.Facts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := quizRun{
		in:      cmd.InOrStdin(),
		out:     out,
		facts:   f,
		surface: display.New(e.mode, out),
		cfg:     quiz.Config{RetryUntilCorrect: e.cfg.RetryUntilCorrect},
		log:     e.log,
	}
	return r.run()
}

// quizRun holds everything one quiz run touches.
type quizRun struct {
	in      io.Reader
	out     io.Writer
	facts   *facts.Facts
	surface display.Surface
	cfg     quiz.Config
	log     *zap.Logger
}

func (r quizRun) run() error {
	questions, err := quiz.Standard(r.facts)
	if err != nil {
		return err
	}

	session := quiz.NewSession()
	log := r.log.With(zap.String("session", session.ID.String()))
	log.Debug("quiz started", zap.Int("questions", len(questions)))

	engine := quiz.NewEngine(r.in, r.out, r.cfg, log)
	renderer := venn.NewRenderer(r.facts, r.surface, log)

	printFacts(r.out, r.facts)

	for _, q := range questions {
		outcome, err := engine.Ask(q)
		if errors.Is(err, quiz.ErrInputClosed) {
			fmt.Fprintln(r.out, theme.Hint.Render("(entrada encerrada)"))
			printSummary(r.out, session.Summary())
			return nil
		}
		if err != nil {
			return err
		}
		session.Record(q.Title, outcome)

		if d := q.Diagram; d != nil {
			if _, err := renderer.RenderTwo(d.Left, d.Right, d.LeftLabel, d.RightLabel, d.Title, highlightFor(q.Operation)); err != nil {
				return fmt.Errorf("render %q: %w", d.Title, err)
			}
		}
	}

	if err := r.renderFinal(renderer); err != nil {
		return err
	}
	printSummary(r.out, session.Summary())
	log.Debug("quiz finished")
	return nil
}

// renderFinal draws the three industries together.
func (r quizRun) renderFinal(renderer *venn.Renderer) error {
	keys := []string{facts.Automobile, facts.Textile, facts.Petrochemical}
	var (
		members [3]sets.Set[string]
		labels  [3]string
	)
	for i, k := range keys {
		s, ok := r.facts.Set(k)
		if !ok {
			return fmt.Errorf("final diagram: unknown category %q", k)
		}
		c, _ := r.facts.Category(k)
		members[i] = s
		labels[i] = fmt.Sprintf("%s (%s)", c.Name, c.Key)
	}

	if _, err := renderer.RenderThree(members[0], members[1], members[2], labels[0], labels[1], labels[2], finalDiagramTitle); err != nil {
		return fmt.Errorf("render final diagram: %w", err)
	}
	return nil
}

func highlightFor(op quiz.Operation) venn.Highlight {
	switch op {
	case quiz.OpUnion:
		return venn.HighlightUnion
	case quiz.OpIntersection:
		return venn.HighlightIntersection
	case quiz.OpDifference:
		return venn.HighlightDifference
	default:
		return venn.HighlightNone
	}
}

func printSummary(w io.Writer, s quiz.Summary) {
	body := strings.Join([]string{
		theme.Title.Render("📋 RESUMO"),
		fmt.Sprintf("Perguntas respondidas: %d", s.Questions),
		fmt.Sprintf("Corretas: %d (de primeira: %d)", s.Correct, s.FirstTry),
		fmt.Sprintf("Tentativas: %d", s.Attempts),
		components.NewScoreBar("Acertos de primeira", s.FirstTryRate(), 48).View(),
	}, "\n")

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Card.Render(body))
}
