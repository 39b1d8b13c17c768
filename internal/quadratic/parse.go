package quadratic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputError reports a coefficient that could not be read as a number.
type InputError struct {
	Name  string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("coeficiente %s inválido: %q não é um número", e.Name, e.Input)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseCoefficient reads a real coefficient. A comma is accepted as the
// decimal separator ("1,5"). NaN and infinities are rejected.
func ParseCoefficient(name, s string) (float64, error) {
	text := strings.TrimSpace(s)
	if !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &InputError{Name: name, Input: s, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InputError{Name: name, Input: s, Err: fmt.Errorf("not a finite number")}
	}
	return f, nil
}

// RangeError reports coefficients whose roots, vertex or discriminant do not
// fit in a float64.
type RangeError struct {
	A, B, C float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coeficientes fora do intervalo representável: a=%s, b=%s, c=%s",
		FormatNumber(e.A), FormatNumber(e.B), FormatNumber(e.C))
}
