// Package facts holds the fact table: which entities (states) carry which
// categories (industries). The named sets every quiz question and diagram
// works with are derived from it once at startup and never edited by hand.
package facts

// Category is a boolean attribute every entity is classified by.
type Category struct {
	// Key is the short set name used in questions, e.g. "A".
	Key string `json:"key"`

	// Name is the display name, e.g. "Automobilística".
	Name string `json:"name"`
}

// Row holds the category flags of one entity.
type Row struct {
	Entity string          `json:"entity"`
	Flags  map[string]bool `json:"flags"`
}

// Table is the configuration value the fact table is built from.
type Table struct {
	Categories []Category `json:"categories"`
	Rows       []Row      `json:"rows"`

	// Abbreviations maps each entity to its display code. Used for diagram
	// labels only.
	Abbreviations map[string]string `json:"abbreviations"`

	// Groups are extra named subsets of the universe, e.g. a geographic
	// region referenced by a question.
	Groups map[string][]string `json:"groups,omitempty"`
}

// Category keys of the built-in table.
const (
	Automobile    = "A"
	Textile       = "B"
	Petrochemical = "C"
)

// GroupSouth names the southern-states group of the built-in table.
const GroupSouth = "Sul"

// Brazil returns the built-in table: ten Brazilian states and whether each
// hosts an automobile, textile or petrochemical industry.
func Brazil() Table {
	row := func(entity string, auto, textile, petro bool) Row {
		return Row{
			Entity: entity,
			Flags: map[string]bool{
				Automobile:    auto,
				Textile:       textile,
				Petrochemical: petro,
			},
		}
	}

	return Table{
		Categories: []Category{
			{Key: Automobile, Name: "Automobilística"},
			{Key: Textile, Name: "Têxtil"},
			{Key: Petrochemical, Name: "Petroquímica"},
		},
		Rows: []Row{
			row("São Paulo", true, true, true),
			row("Minas Gerais", true, true, false),
			row("Rio de Janeiro", false, true, true),
			row("Rio Grande do Sul", true, true, true),
			row("Paraná", true, true, false),
			row("Santa Catarina", false, true, false),
			row("Bahia", true, true, true),
			row("Pernambuco", true, true, false),
			row("Ceará", false, true, false),
			row("Amazonas", false, true, true),
		},
		Abbreviations: map[string]string{
			"São Paulo":         "SP",
			"Minas Gerais":      "MG",
			"Rio de Janeiro":    "RJ",
			"Rio Grande do Sul": "RS",
			"Paraná":            "PR",
			"Santa Catarina":    "SC",
			"Bahia":             "BA",
			"Pernambuco":        "PE",
			"Ceará":             "CE",
			"Amazonas":          "AM",
		},
		Groups: map[string][]string{
			GroupSouth: {"Rio Grande do Sul", "Paraná", "Santa Catarina"},
		},
	}
}
