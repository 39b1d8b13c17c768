package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/vennquiz/internal/facts"
	"github.com/abhisek/vennquiz/internal/sets"
)

func TestCheck_SetAnswer(t *testing.T) {
	f := facts.MustBuild(facts.Brazil())
	auto, _ := f.Set(facts.Automobile)
	answer := SetAnswer(auto)

	tests := []struct {
		name  string
		input string
		want  Verdict
	}{
		{"mixed separators, case and accents", "Bahia; são paulo, Parana, Pernambuco, Rio Grande do Sul, minas gerais", Correct},
		{"extra spaces", "  bahia ,sao   paulo;parana;pernambuco ,rio grande do sul,MINAS GERAIS ", Correct},
		{"duplicates", "Bahia, Bahia, São Paulo, Paraná, Pernambuco, Rio Grande do Sul, Minas Gerais", Correct},
		{"trailing separators", "Bahia, São Paulo, Paraná, Pernambuco, Rio Grande do Sul, Minas Gerais,;", Correct},
		{"missing one", "Bahia, São Paulo, Paraná, Pernambuco, Rio Grande do Sul", Incorrect},
		{"one too many", "Bahia, São Paulo, Paraná, Pernambuco, Rio Grande do Sul, Minas Gerais, Ceará", Incorrect},
		{"empty", "", Incorrect},
		{"only separators", ",;,", Incorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.input, answer))
		})
	}
}

func TestCheck_SetAnswer_OrderAndDuplicateInsensitive(t *testing.T) {
	answer := SetAnswer(sets.New("São Paulo", "Rio de Janeiro"))

	assert.Equal(t, Check("SP, SP, RJ", answer), Check("rj,sp", answer))
	assert.Equal(t, Correct, Check("são paulo, SAO PAULO, rio de janeiro", answer))
	assert.Equal(t, Correct, Check("Rio de Janeiro;São Paulo", answer))
}

func TestCheck_EmptySetAnswer(t *testing.T) {
	answer := SetAnswer(sets.New[string]())
	assert.Equal(t, Correct, Check("", answer))
	assert.Equal(t, Correct, Check(" , ", answer))
	assert.Equal(t, Incorrect, Check("Bahia", answer))
}

func TestCheck_ScalarAnswer(t *testing.T) {
	answer := ScalarAnswer(Yes)

	tests := []struct {
		input string
		want  Verdict
	}{
		{"Sim", Correct},
		{" SIM ", Correct},
		{"sim", Correct},
		{"talvez", Incorrect},
		{"não", Incorrect},
		{"", Incorrect},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Check(tc.input, answer), "Check(%q)", tc.input)
	}

	assert.Equal(t, Correct, Check("nao", ScalarAnswer(No)))
	assert.Equal(t, Correct, Check("NÃO", ScalarAnswer(No)))
}

func TestAnswerSpec_Kind(t *testing.T) {
	assert.Equal(t, KindSet, SetAnswer(sets.New("x")).Kind())
	assert.Equal(t, KindScalar, ScalarAnswer("sim").Kind())
	assert.Equal(t, "sim", ScalarAnswer("sim").Scalar())
	assert.True(t, SetAnswer(sets.New("x")).Set().Contains("x"))
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "incorrect", Incorrect.String())
}
