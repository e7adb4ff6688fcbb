package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("executing command: %v", err)
	}
	return out.String()
}

func TestAnswerFromArgs(t *testing.T) {
	got := runCmd(t, "", "What", "is", "2", "plus", "3", "multiplied", "by", "4?")
	if got != "14\n" {
		t.Fatalf("expected %q, got %q", "14\n", got)
	}
}

func TestAnswerShowsIntent(t *testing.T) {
	got := runCmd(t, "", "--intent", "What is your name?")
	if got != "trivia.name\tJeremy\n" {
		t.Fatalf("expected intent-prefixed answer, got %q", got)
	}
}

func TestAnswerFromStdin(t *testing.T) {
	got := runCmd(t, "12*12\n\nhello there\nWhat is 10 divided by 0?\n")

	want := "144\n\nCannot divide by zero\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
