package main

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

const maxSuggestions = 10

// nameCompleter suggests player names containing the typed text.
func nameCompleter(names []string) prompt.Completer {
	all := make([]prompt.Suggest, len(names))
	for i, n := range names {
		all[i] = prompt.Suggest{Text: n}
	}
	return func(d prompt.Document) []prompt.Suggest {
		word := strings.TrimSpace(d.TextBeforeCursor())
		if word == "" {
			return []prompt.Suggest{}
		}
		s := prompt.FilterContains(all, word, true)
		if len(s) > maxSuggestions {
			s = s[:maxSuggestions]
		}
		return s
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	complete := nameCompleter(state.roster.Names())
	opts := []prompt.Option{
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionScrollbarBGColor(prompt.Black),
	}

	p1 := strings.TrimSpace(prompt.Input("Enter the first player's name: ", complete, opts...))
	p2 := strings.TrimSpace(prompt.Input("Enter the second player's name: ", complete, opts...))

	fmt.Fprintln(out, "Player Comparison:")
	state.compare(p1, p2)
	fmt.Fprintln(out, "Finding connection path...")
	state.connect(p1, p2)

	return nil
}
