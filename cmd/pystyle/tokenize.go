package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pystyle/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.py",
	Short: "Dump the token stream of a Python source file",
	Long: `Tokenize prints the token stream the checker's front end produces,
including the synthetic NEWLINE, INDENT and DEDENT tokens.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runTokenize,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	_, toks, err := driver.Tokenize(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, tok := range toks {
		text := tok.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%q\n", tok.Line, tok.Kind, text)
	}
	return w.Flush()
}
