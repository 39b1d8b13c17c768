package facts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vennquiz/internal/sets"
)

func TestBuild_Brazil(t *testing.T) {
	f, err := Build(Brazil())
	require.NoError(t, err)

	a, ok := f.Set(Automobile)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Bahia", "Minas Gerais", "Paraná", "Pernambuco", "Rio Grande do Sul", "São Paulo",
	}, sets.Sorted(a))

	b, _ := f.Set(Textile)
	assert.True(t, b.Equal(f.Universe()), "every state has a textile industry")

	c, _ := f.Set(Petrochemical)
	assert.Equal(t, []string{
		"Amazonas", "Bahia", "Rio Grande do Sul", "Rio de Janeiro", "São Paulo",
	}, sets.Sorted(c))

	assert.Equal(t, 10, f.Universe().Len())
}

func TestBuild_MembershipMatchesFlags(t *testing.T) {
	table := Brazil()
	f := MustBuild(table)

	for _, r := range table.Rows {
		for _, c := range table.Categories {
			s, ok := f.Set(c.Key)
			require.True(t, ok)
			assert.Equal(t, r.Flags[c.Key], s.Contains(r.Entity), "%s/%s", r.Entity, c.Key)
			assert.Equal(t, r.Flags[c.Key], f.Holds(r.Entity, c.Key), "%s/%s", r.Entity, c.Key)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	f1 := MustBuild(Brazil())
	f2 := MustBuild(Brazil())
	for _, key := range []string{Automobile, Textile, Petrochemical} {
		s1, _ := f1.Set(key)
		s2, _ := f2.Set(key)
		assert.True(t, s1.Equal(s2), key)
	}
}

func TestBuild_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
		want   string
	}{
		{
			name: "duplicate entity",
			mutate: func(tb *Table) {
				tb.Rows = append(tb.Rows, tb.Rows[0])
			},
			want: `duplicate entity: "São Paulo"`,
		},
		{
			name: "missing abbreviation",
			mutate: func(tb *Table) {
				delete(tb.Abbreviations, "Bahia")
			},
			want: `entity "Bahia" has no abbreviation`,
		},
		{
			name: "missing flag",
			mutate: func(tb *Table) {
				delete(tb.Rows[1].Flags, Petrochemical)
			},
			want: `entity "Minas Gerais" has no flag for category "C"`,
		},
		{
			name: "undeclared flag",
			mutate: func(tb *Table) {
				tb.Rows[2].Flags["Z"] = true
			},
			want: `entity "Rio de Janeiro" flags undeclared category "Z"`,
		},
		{
			name: "duplicate category",
			mutate: func(tb *Table) {
				tb.Categories = append(tb.Categories, Category{Key: Automobile, Name: "Again"})
			},
			want: `duplicate category key: "A"`,
		},
		{
			name: "group outside universe",
			mutate: func(tb *Table) {
				tb.Groups["Norte"] = []string{"Pará"}
			},
			want: `group "Norte" references unknown entity "Pará"`,
		},
		{
			name: "empty table",
			mutate: func(tb *Table) {
				tb.Rows = nil
			},
			want: "table has no rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Brazil()
			tt.mutate(&table)

			_, err := Build(table)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, cfgErr.Problems, tt.want)
		})
	}
}

func TestBuild_ReportsAllProblems(t *testing.T) {
	table := Brazil()
	delete(table.Abbreviations, "Ceará")
	delete(table.Abbreviations, "Amazonas")

	_, err := Build(table)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 2)
	assert.Contains(t, err.Error(), "fact table validation failed")
}

func TestFacts_AccessorsReturnCopies(t *testing.T) {
	f := MustBuild(Brazil())

	a, _ := f.Set(Automobile)
	delete(a, "São Paulo")
	assert.True(t, f.Holds("São Paulo", Automobile))

	u := f.Universe()
	u["Acre"] = struct{}{}
	assert.False(t, f.Universe().Contains("Acre"))
}

func TestFacts_Abbrev(t *testing.T) {
	f := MustBuild(Brazil())

	code, err := f.Abbrev("Rio Grande do Sul")
	require.NoError(t, err)
	assert.Equal(t, "RS", code)

	_, err = f.Abbrev("Acre")
	assert.ErrorIs(t, err, ErrMissingAbbreviation)
}

func TestFacts_GroupAndCategory(t *testing.T) {
	f := MustBuild(Brazil())

	south, ok := f.Group(GroupSouth)
	require.True(t, ok)
	assert.Equal(t, []string{"Paraná", "Rio Grande do Sul", "Santa Catarina"}, sets.Sorted(south))

	_, ok = f.Group("Nordeste")
	assert.False(t, ok)

	c, ok := f.Category(Petrochemical)
	require.True(t, ok)
	assert.Equal(t, "Petroquímica", c.Name)

	_, ok = f.Set("Z")
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	out := Format(MustBuild(Brazil()))
	for _, want := range []string{"Estado", "Automobilística", "Têxtil", "Petroquímica", "Santa Catarina", LabelYes, LabelNo} {
		assert.Contains(t, out, want)
	}
}
