package quadratic

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber prints x in its shortest exact decimal form.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(clean(x), 'g', -1, 64)
}

// Formula renders f(x) = ax² + bx + c, omitting zero terms and unit
// coefficients.
func Formula(a, b, c float64) string {
	var terms []string
	add := func(coef float64, suffix string) {
		if coef == 0 {
			return
		}
		sign := "+"
		if coef < 0 {
			sign = "-"
			coef = -coef
		}
		num := FormatNumber(coef)
		if coef == 1 && suffix != "" {
			num = ""
		}
		if len(terms) == 0 {
			if sign == "-" {
				terms = append(terms, "-"+num+suffix)
			} else {
				terms = append(terms, num+suffix)
			}
			return
		}
		terms = append(terms, sign+" "+num+suffix)
	}
	add(a, "x²")
	add(b, "x")
	add(c, "")

	if len(terms) == 0 {
		return "f(x) = 0"
	}
	return "f(x) = " + strings.Join(terms, " ")
}

// Describe explains an analysis in plain text, one fact per line.
func Describe(an Analysis) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("Função: %s", Formula(an.A, an.B, an.C))
	line("")

	switch an.Kind {
	case Indefinite:
		line("Função indefinida: f(x) = 0")
		line("→ O gráfico é o próprio eixo x, logo existem infinitas raízes.")

	case Constant:
		line("Essa é uma função constante: f(x) = %s", FormatNumber(an.C))
		line("→ Não possui raízes reais (reta paralela ao eixo x).")

	case Linear:
		line("Essa não é uma função quadrática, é linear: f(x) = bx + c")
		line("Raiz única: x = %s", FormatNumber(an.Roots[0]))
		line("Interseção com eixo y: f(0) = %s", FormatNumber(an.YIntercept))

	case Quadratic:
		line("Função quadrática válida!")
		line("Discriminante (Δ): %s", FormatNumber(an.Discriminant))
		switch len(an.Roots) {
		case 0:
			line("Não existem raízes reais.")
		case 1:
			line("Raiz única: x = %s", FormatNumber(an.Roots[0]))
		default:
			line("Duas raízes reais: x1 = %s, x2 = %s", FormatNumber(an.Roots[0]), FormatNumber(an.Roots[1]))
		}
		kind := "mínimo"
		if an.VertexKind == Maximum {
			kind = "máximo"
		}
		line("Vértice: (%s, %s) → ponto de %s", FormatNumber(an.Vertex.X), FormatNumber(an.Vertex.Y), kind)
		line("Interseção com eixo y: f(0) = %s", FormatNumber(an.YIntercept))
	}

	return strings.TrimRight(b.String(), "\n")
}

// PlotTitle names the plot of an analysis.
func PlotTitle(k Kind) string {
	switch k {
	case Constant:
		return "Função Constante"
	case Linear:
		return "Função Linear"
	default:
		return "Função Quadrática"
	}
}
