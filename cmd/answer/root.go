package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"query-service/internal/query"
)

func newRootCmd() *cobra.Command {
	var showIntent bool

	cmd := &cobra.Command{
		Use:   "answer [query...]",
		Short: "Answer a trivia, arithmetic or number question",
		Example: `  answer "What is 2 plus 3 multiplied by 4?"
  answer --intent which of 7, 8, 9 is prime
  printf 'What is your name?\n12*12\n' | answer`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return printAnswer(out, strings.Join(args, " "), showIntent)
			}
			return answerLines(cmd.InOrStdin(), out, showIntent)
		},
	}

	cmd.Flags().BoolVar(&showIntent, "intent", false, "print the matched intent before each answer")

	return cmd
}

// answerLines answers every non-blank line of r.
func answerLines(r io.Reader, w io.Writer, showIntent bool) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := printAnswer(w, line, showIntent); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printAnswer(w io.Writer, q string, showIntent bool) error {
	res := query.Classify(q)
	if showIntent {
		_, err := fmt.Fprintf(w, "%s\t%s\n", res.Intent, res.Answer)
		return err
	}
	_, err := fmt.Fprintln(w, res.Answer)
	return err
}
