// Package testable lets CLI tests answer survey prompts without a terminal.
package testable

import (
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/mattn/go-isatty"
)

var isTesting = false
var nextSurveyInput func() StringOrBool = func() StringOrBool { panic("not implemented") }

// use this type for survey inputs
type StringOrBool interface{}

// use this type for survey inputs
type SurveyInputs []StringOrBool

// configures Testable functions to utilise testing hooks
func BeginTesting() {
	isTesting = true
}

// configures Testable functions to stop utilising testing hooks
func EndTesting() {
	isTesting = false
}

// Configure this with a function that returns the next input required for a cli test
func WithNextSurveyInputFunc(next func() StringOrBool) {
	nextSurveyInput = next
}

// NextFuncFromSlice returns a next function which hands out inputs in order
// and fails the test once they run out. position is advanced on every call.
func NextFuncFromSlice(t *testing.T, inputs SurveyInputs, position *int) func() StringOrBool {
	return func() StringOrBool {
		if *position >= len(inputs) {
			t.Fatal("attempted to call nextSurveyInput when no inputs remain")
		}
		v := inputs[*position]
		*position++
		return v
	}
}

// Interactive reports whether prompts can be shown, either because stdin
// is a terminal or because a test is supplying the answers.
func Interactive() bool {
	if isTesting {
		return true
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// AskOne is a function which can be used to intercept surveys in the cli and replace the survey with input from a test input stream
// NextSurveyInput should be set to a function which returns the next string to satisfy the input
func AskOne(in survey.Prompt, out interface{}, opts ...survey.AskOpt) error {
	if isTesting {
		return core.WriteAnswer(out, "", nextSurveyInput())
	}
	return survey.AskOne(in, out, opts...)
}
