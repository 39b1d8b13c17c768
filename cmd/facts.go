package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vennquiz/internal/facts"
	"github.com/abhisek/vennquiz/internal/quiz"
	"github.com/abhisek/vennquiz/internal/ui/theme"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Print the fact table and the sets derived from it",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		printFacts(out, f)
		if showSets, _ := cmd.Flags().GetBool("sets"); showSets {
			fmt.Fprintln(out)
			printSets(out, f)
		}
		return nil
	},
}

// loadFacts builds the fact table from path, or the built-in table when
// path is empty.
func loadFacts(path string) (*facts.Facts, error) {
	table := facts.Brazil()
	if path != "" {
		var err error
		table, err = facts.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load fact table: %w", err)
		}
	}

	f, err := facts.Build(table)
	if err != nil {
		return nil, fmt.Errorf("build fact table: %w", err)
	}
	return f, nil
}

func printFacts(w io.Writer, f *facts.Facts) {
	fmt.Fprintln(w, theme.Title.Render("📊 DADOS DOS ESTADOS E INDÚSTRIAS:"))
	fmt.Fprintln(w, facts.Format(f))
}

func printSets(w io.Writer, f *facts.Facts) {
	for _, c := range f.Categories() {
		s, _ := f.Set(c.Key)
		fmt.Fprintf(w, "%s (%s) = %s\n", c.Key, c.Name, quiz.FormatSet(s))
	}
	fmt.Fprintf(w, "U = %s\n", quiz.FormatSet(f.Universe()))

	abbrev := f.Abbreviations()
	legend := make([]string, 0, len(abbrev))
	for _, entity := range slices.Sorted(maps.Keys(abbrev)) {
		legend = append(legend, abbrev[entity]+" = "+entity)
	}
	fmt.Fprintln(w, theme.Hint.Render("Siglas: "+strings.Join(legend, ", ")))
}

func init() {
	factsCmd.Flags().Bool("sets", true, "Also list the named sets and the universe")
}
