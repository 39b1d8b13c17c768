package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

// ErrInputClosed is returned by Ask when the input ends before the question
// reaches a terminal state.
var ErrInputClosed = errors.New("input closed")

// Config controls the attempt policy of the Engine.
type Config struct {
	// RetryUntilCorrect keeps asking the same question until the answer is
	// correct. When false, the first answer is judged and the correct
	// answer is shown either way.
	RetryUntilCorrect bool
}

// DefaultConfig returns the retry-until-correct policy.
func DefaultConfig() Config {
	return Config{RetryUntilCorrect: true}
}

// Outcome is the terminal state of one question.
type Outcome struct {
	Verdict  Verdict
	Attempts int
}

// Engine asks questions on an interactive line-oriented channel. Reads
// block until a full line arrives; there is no timeout.
type Engine struct {
	in  *bufio.Reader
	out io.Writer
	cfg Config
	log *zap.Logger
}

// NewEngine creates an Engine reading answers from in and writing the
// transcript to out. A nil logger disables logging.
func NewEngine(in io.Reader, out io.Writer, cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
		cfg: cfg,
		log: log,
	}
}

// Ask poses q and reads answers until a terminal state is reached. A wrong
// answer is an Outcome, not an error; the only error is running out of
// input.
func (e *Engine) Ask(q Question) (Outcome, error) {
	fmt.Fprintf(e.out, "\n%s\n%s\n", theme.Title.Render("🔶 "+q.Title), theme.Body.Render(q.Prompt))

	var out Outcome
	for {
		fmt.Fprint(e.out, answerPrompt(q.Answer.Kind()))
		line, err := e.readLine()
		if err != nil {
			fmt.Fprintln(e.out)
			return out, err
		}
		out.Attempts++

		out.Verdict = Check(line, q.Answer)
		e.log.Debug("answer checked",
			zap.String("question", q.Title),
			zap.Int("attempt", out.Attempts),
			zap.Stringer("verdict", out.Verdict),
		)

		if out.Verdict == Correct {
			fmt.Fprintln(e.out, theme.Correct.Render("✅ Correto!"))
			fmt.Fprintln(e.out, q.Explanation)
			return out, nil
		}

		if e.cfg.RetryUntilCorrect {
			fmt.Fprintln(e.out, theme.Incorrect.Render("❌ Incorreto! Tente novamente..."))
			continue
		}

		fmt.Fprintln(e.out, theme.Incorrect.Render("❌ Incorreto!"))
		fmt.Fprintf(e.out, "Resposta correta: %s\n", q.Explanation)
		return out, nil
	}
}

// readLine returns the next line without its terminator. Lines of any
// length are accepted. A final line without a newline still counts.
func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func answerPrompt(kind AnswerKind) string {
	if kind == KindSet {
		return "Sua resposta (separe por vírgulas): "
	}
	return "Sua resposta: "
}
