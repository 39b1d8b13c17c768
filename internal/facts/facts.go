package facts

import (
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/vennquiz/internal/sets"
)

// Facts is the built, read-only fact table.
type Facts struct {
	categories []Category
	rows       []Row
	universe   sets.Set[string]
	named      map[string]sets.Set[string]
	abbrev     map[string]string
	groups     map[string]sets.Set[string]
}

// Build validates t and derives one named set per category plus the
// universe. It returns a *ConfigError describing every problem found.
func Build(t Table) (*Facts, error) {
	if err := validateTable(t); err != nil {
		return nil, err
	}

	f := &Facts{
		categories: slices.Clone(t.Categories),
		rows:       make([]Row, 0, len(t.Rows)),
		universe:   make(sets.Set[string], len(t.Rows)),
		named:      make(map[string]sets.Set[string], len(t.Categories)),
		abbrev:     maps.Clone(t.Abbreviations),
		groups:     make(map[string]sets.Set[string], len(t.Groups)),
	}

	for _, c := range t.Categories {
		f.named[c.Key] = sets.New[string]()
	}
	for _, r := range t.Rows {
		f.rows = append(f.rows, Row{Entity: r.Entity, Flags: maps.Clone(r.Flags)})
		f.universe[r.Entity] = struct{}{}
		for _, c := range t.Categories {
			if r.Flags[c.Key] {
				f.named[c.Key][r.Entity] = struct{}{}
			}
		}
	}
	for name, members := range t.Groups {
		f.groups[name] = sets.New(members...)
	}

	return f, nil
}

// MustBuild is like Build but panics on an invalid table. Meant for the
// built-in table, which is covered by tests.
func MustBuild(t Table) *Facts {
	f, err := Build(t)
	if err != nil {
		panic(err)
	}
	return f
}

// validateTable performs all structural checks on t.
func validateTable(t Table) error {
	var problems []string

	if len(t.Rows) == 0 {
		problems = append(problems, "table has no rows")
	}
	if len(t.Categories) == 0 {
		problems = append(problems, "table has no categories")
	}

	keys := make(map[string]bool, len(t.Categories))
	for i, c := range t.Categories {
		if c.Key == "" {
			problems = append(problems, fmt.Sprintf("category %d has an empty key", i))
			continue
		}
		if keys[c.Key] {
			problems = append(problems, fmt.Sprintf("duplicate category key: %q", c.Key))
		}
		keys[c.Key] = true
	}

	seen := make(map[string]bool, len(t.Rows))
	for i, r := range t.Rows {
		if r.Entity == "" {
			problems = append(problems, fmt.Sprintf("row %d has an empty entity", i))
			continue
		}
		if seen[r.Entity] {
			problems = append(problems, fmt.Sprintf("duplicate entity: %q", r.Entity))
		}
		seen[r.Entity] = true

		if code := t.Abbreviations[r.Entity]; code == "" {
			problems = append(problems, fmt.Sprintf("entity %q has no abbreviation", r.Entity))
		}
		for _, c := range t.Categories {
			if _, ok := r.Flags[c.Key]; !ok && c.Key != "" {
				problems = append(problems, fmt.Sprintf("entity %q has no flag for category %q", r.Entity, c.Key))
			}
		}
		for _, k := range slices.Sorted(maps.Keys(r.Flags)) {
			if !keys[k] {
				problems = append(problems, fmt.Sprintf("entity %q flags undeclared category %q", r.Entity, k))
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(t.Groups)) {
		for _, m := range t.Groups[name] {
			if !seen[m] {
				problems = append(problems, fmt.Sprintf("group %q references unknown entity %q", name, m))
			}
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}

// Universe returns every entity in the table.
func (f *Facts) Universe() sets.Set[string] {
	return maps.Clone(f.universe)
}

// Set returns the named set for a category key.
func (f *Facts) Set(key string) (sets.Set[string], bool) {
	s, ok := f.named[key]
	if !ok {
		return nil, false
	}
	return maps.Clone(s), true
}

// Holds reports whether entity carries the category key.
func (f *Facts) Holds(entity, key string) bool {
	return f.named[key].Contains(entity)
}

// Category returns the category declared under key.
func (f *Facts) Category(key string) (Category, bool) {
	for _, c := range f.categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Categories returns the categories in declaration order.
func (f *Facts) Categories() []Category {
	return slices.Clone(f.categories)
}

// Group returns the named group, if declared.
func (f *Facts) Group(name string) (sets.Set[string], bool) {
	g, ok := f.groups[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(g), true
}

// Abbrev returns the display code of entity.
func (f *Facts) Abbrev(entity string) (string, error) {
	code, ok := f.abbrev[entity]
	if !ok || code == "" {
		return "", fmt.Errorf("%w for %q", ErrMissingAbbreviation, entity)
	}
	return code, nil
}

// Abbreviations returns a copy of the abbreviation map.
func (f *Facts) Abbreviations() map[string]string {
	return maps.Clone(f.abbrev)
}
