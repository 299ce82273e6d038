package profilerm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/profilerm/internal/build"
	"github.com/common-fate/profilerm/pkg/browser"
	"github.com/common-fate/profilerm/pkg/localstate"
)

// statusError converts the expected outcomes of a run, such as a missing
// file or an unknown profile, into an error to show the operator.
// It returns nil for any other error.
func statusError(err error, path string) *clierr.Err {
	var unknown *localstate.UnknownProfileError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, browser.ErrEnvNotSet):
		return clierr.New(fmt.Sprintf("Error: could not locate the Local State file: %s", err),
			clierr.Info("Pass --local-state to point at the file directly"),
		)
	case errors.Is(err, localstate.ErrNotFound):
		return clierr.New(fmt.Sprintf("Error: Local State file not found at %s", path),
			clierr.Info("Use --canary for Chrome Canary, or --local-state to point at a custom location"),
		)
	case errors.Is(err, localstate.ErrMalformed):
		return clierr.New(fmt.Sprintf("Error: Could not decode JSON from %s", path))
	case errors.Is(err, localstate.ErrNoProfiles):
		return clierr.New("Error: No profiles found in Local State file.")
	case errors.As(err, &unknown):
		var messages []clierr.Printer
		if len(unknown.Suggestions) > 0 {
			quoted := make([]string, len(unknown.Suggestions))
			for i, s := range unknown.Suggestions {
				quoted[i] = fmt.Sprintf("%q", s)
			}
			messages = append(messages, clierr.Infof("Did you mean %s?", strings.Join(quoted, " or ")))
		}
		messages = append(messages, clierr.Infof("Run '%s list' to see the profiles in %s", build.BinaryName(), path))
		return clierr.New(fmt.Sprintf("Error: Profile %q not found.", unknown.ID), messages...)
	}
	return nil
}

// handle prints expected outcomes and swallows them so the command
// finishes normally. Anything else is returned to fail the command.
func handle(err error, path string) error {
	if cliErr := statusError(err, path); cliErr != nil {
		cliErr.PrintCLIError()
		return nil
	}
	return err
}
