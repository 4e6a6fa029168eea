// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console implements the interactive read-eval loop: one case
// description per line, one formatted analysis per case.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/statute-engine/pkg/types"
)

// quitSentinel terminates the loop, compared case-insensitively.
const quitSentinel = "quit"

// Run reads case descriptions from r one line at a time, analyzes each with
// analyze, and writes formatted results to w. An empty line is rejected with
// a retry prompt; the quit sentinel ends the loop. Calls are strictly
// sequential: each analysis completes before the next line is read.
func Run(r io.Reader, w io.Writer, analyze func(string) types.Analysis) error {
	fmt.Fprintln(w, "\nLegal Case Analyzer")
	fmt.Fprintln(w, "===================")
	fmt.Fprintln(w, "\nEnter your case description below (type 'quit' to exit):")
	fmt.Fprintln(w, "Example: 'Person A attacked Person B causing grievous injury'")
	fmt.Fprintln(w, "Example: 'The accused stole a laptop from the office'")
	fmt.Fprintln(w, "Example: 'Person A murdered Person B by stabbing multiple times'")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.ToLower(line) == quitSentinel {
			break
		}
		if line == "" {
			fmt.Fprintln(w, "Please enter a case description.")
			continue
		}

		Print(w, analyze(line))
	}
	return scanner.Err()
}

// Print writes one analysis in the interactive report layout.
func Print(w io.Writer, a types.Analysis) {
	fmt.Fprintln(w, "\nLegal Case Analysis")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	fmt.Fprintln(w, "\nCase Description:")
	fmt.Fprintln(w, a.CaseText)

	if a.Failed() {
		fmt.Fprintln(w, "\nError:", a.Error)
		fmt.Fprintln(w, "Message:", a.Message)
		return
	}

	fmt.Fprintln(w, "\nLegal Analysis:")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	if len(a.Parties) > 0 {
		fmt.Fprintln(w, "\nParties Involved:")
		for _, party := range a.Parties {
			fmt.Fprintf(w, "- %s\n", party)
		}
	}

	fmt.Fprintf(w, "\nApplicable IPC Section: %s (Confidence: %.1f%%)\n", a.Section, a.Confidence)

	fmt.Fprintln(w, "\n"+a.Explanation)
	fmt.Fprintln(w, "\n"+a.Recommendations)
}
