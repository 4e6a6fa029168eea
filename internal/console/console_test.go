// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/statute-engine/pkg/types"
)

func stubAnalyze(calls *[]string, result types.Analysis) func(string) types.Analysis {
	return func(caseText string) types.Analysis {
		*calls = append(*calls, caseText)
		result.CaseText = caseText
		return result
	}
}

func TestRunAnalyzesEachLine(t *testing.T) {
	in := strings.NewReader("Person A murdered Person B\nquit\n")
	var out bytes.Buffer
	var calls []string

	err := Run(in, &out, stubAnalyze(&calls, types.Analysis{
		Section:         "302",
		Confidence:      91.0,
		Parties:         []string{"Person A", "Person B"},
		Explanation:     "Murder: stub explanation",
		Recommendations: "Recommendations: stub advice",
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"Person A murdered Person B"}, calls)

	text := out.String()
	assert.Contains(t, text, "Legal Case Analyzer")
	assert.Contains(t, text, "Case Description:")
	assert.Contains(t, text, "Person A murdered Person B")
	assert.Contains(t, text, "Parties Involved:")
	assert.Contains(t, text, "- Person A")
	assert.Contains(t, text, "Applicable IPC Section: 302 (Confidence: 91.0%)")
	assert.Contains(t, text, "Murder: stub explanation")
	assert.Contains(t, text, "Recommendations: stub advice")
}

func TestRunRejectsEmptyInput(t *testing.T) {
	in := strings.NewReader("\n   \nquit\n")
	var out bytes.Buffer
	var calls []string

	err := Run(in, &out, stubAnalyze(&calls, types.Analysis{}))
	require.NoError(t, err)
	assert.Empty(t, calls, "empty lines must not be analyzed")
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a case description."))
}

func TestRunQuitIsCaseInsensitive(t *testing.T) {
	in := strings.NewReader("QUIT\nPerson A attacked Person B\n")
	var out bytes.Buffer
	var calls []string

	err := Run(in, &out, stubAnalyze(&calls, types.Analysis{}))
	require.NoError(t, err)
	assert.Empty(t, calls, "nothing after the sentinel should be analyzed")
}

func TestRunStopsAtEOF(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer
	var calls []string

	err := Run(in, &out, stubAnalyze(&calls, types.Analysis{}))
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestPrintFailureArm(t *testing.T) {
	var out bytes.Buffer
	Print(&out, types.Analysis{
		CaseText: "Person A attacked Person B",
		Error:    "model artifact rf_classifier.json: no such file",
		Message:  "An error occurred during analysis. Please check if all model files are available.",
	})

	text := out.String()
	assert.Contains(t, text, "Error: model artifact rf_classifier.json: no such file")
	assert.Contains(t, text, "Message: An error occurred during analysis.")
	assert.NotContains(t, text, "Applicable IPC Section")
	assert.NotContains(t, text, "Parties Involved")
}

func TestPrintOmitsEmptyParties(t *testing.T) {
	var out bytes.Buffer
	Print(&out, types.Analysis{
		CaseText:        "the wall collapsed",
		Section:         "304A",
		Confidence:      55.5,
		Explanation:     "Death by Negligence: stub",
		Recommendations: "Recommendations: stub",
	})

	text := out.String()
	assert.NotContains(t, text, "Parties Involved")
	assert.Contains(t, text, "Applicable IPC Section: 304A (Confidence: 55.5%)")
}
