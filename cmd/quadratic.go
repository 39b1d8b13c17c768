package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vennquiz/internal/display"
	"github.com/abhisek/vennquiz/internal/quadratic"
	"github.com/abhisek/vennquiz/internal/ui/theme"
)

var quadraticCmd = &cobra.Command{
	Use:     "quadratic [a b c]",
	Aliases: []string{"quadratica"},
	Short:   "Analyze and plot f(x) = ax² + bx + c",
	Long: `Classifies f(x) = ax² + bx + c, reports roots, vertex and discriminant,
and plots the curve. Coefficients are read from stdin when not given as
arguments. Both "1.5" and "1,5" are accepted.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 0 or 3 coefficients, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.log.Sync() //nolint:errcheck

		out := cmd.OutOrStdout()
		return analyzeQuadratic(cmd.InOrStdin(), out, args, display.New(e.mode, out), e.log)
	},
}

var coefficientNames = [3]string{"a", "b", "c"}

// readCoefficients parses args when present and prompts on in otherwise.
func readCoefficients(in io.Reader, out io.Writer, args []string) ([3]float64, error) {
	var coef [3]float64

	raw := args
	if len(raw) == 0 {
		r := bufio.NewReader(in)
		for _, name := range coefficientNames {
			fmt.Fprintf(out, "Digite o coeficiente %s: ", name)
			line, err := r.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				if errors.Is(err, io.EOF) {
					return coef, errors.New("entrada encerrada antes de todos os coeficientes")
				}
				return coef, fmt.Errorf("read coefficient %s: %w", name, err)
			}
			raw = append(raw, strings.TrimRight(line, "\r\n"))
		}
	}

	for i, name := range coefficientNames {
		v, err := quadratic.ParseCoefficient(name, raw[i])
		if err != nil {
			return coef, err
		}
		coef[i] = v
	}
	return coef, nil
}

func analyzeQuadratic(in io.Reader, out io.Writer, args []string, surface display.Surface, log *zap.Logger) error {
	coef, err := readCoefficients(in, out, args)
	if err != nil {
		return err
	}

	an := quadratic.Analyze(coef[0], coef[1], coef[2])
	if err := an.Validate(); err != nil {
		return err
	}
	log.Debug("function classified",
		zap.Float64s("coefficients", coef[:]),
		zap.Stringer("kind", an.Kind),
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Title.Render("📐 ANÁLISE DA FUNÇÃO"))
	fmt.Fprintln(out, quadratic.Describe(an))

	if an.Kind == quadratic.Indefinite {
		return nil
	}

	plot := quadratic.NewPlot(an, quadratic.DefaultWidth, quadratic.DefaultHeight)
	if err := surface.Show(quadratic.PlotTitle(an.Kind), plot.Render()); err != nil {
		return fmt.Errorf("show plot: %w", err)
	}
	return nil
}
