package profilerm

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/common-fate/profilerm/internal/build"
	"github.com/common-fate/profilerm/pkg/browser"
	"github.com/common-fate/profilerm/pkg/localstate"
	"github.com/common-fate/profilerm/pkg/testable"
	cfflags "github.com/common-fate/profilerm/pkg/urfav_overrides"
	"github.com/urfave/cli/v2"
)

type RemoveOpts struct {
	// Path is the Local State file to edit.
	Path      string
	ProfileID string
	// DryRun prints the edited document to Out instead of saving it.
	DryRun bool
	Out    io.Writer
}

// Remove removes a profile from the Local State file at opts.Path.
//
// Outside of dry-run mode the file is held open from the initial read
// until the edited document has been written back.
func Remove(opts RemoveOpts) error {
	if opts.DryRun {
		doc, err := localstate.Load(opts.Path)
		if err != nil {
			return err
		}
		if err := doc.RemoveProfile(opts.ProfileID); err != nil {
			return err
		}
		clio.Debugf("dry run: not writing changes to %s", opts.Path)
		_, err = fmt.Fprintln(opts.Out, string(doc.Indented()))
		return err
	}

	f, doc, err := localstate.Open(opts.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := doc.RemoveProfile(opts.ProfileID); err != nil {
		return err
	}
	if err := f.Save(doc); err != nil {
		return err
	}
	clio.Successf("Profile %q removed successfully.", opts.ProfileID)
	return nil
}

// localStatePath returns override if it is set, otherwise the platform
// default location for the selected channel.
func localStatePath(override string, canary bool) (string, error) {
	if override != "" {
		return override, nil
	}
	platform, channel := browser.CurrentPlatform(), browser.ChannelFromCanary(canary)
	clio.Debugf("resolving local state path for %s (%s channel)", platform, channel)
	return browser.LocalStatePath(platform, channel, browser.OSEnv())
}

func removeAction(c *cli.Context, argv []string) error {
	allFlags, err := cfflags.New("profilerm", GlobalFlags, c, argv)
	if err != nil {
		return err
	}
	if allFlags.Bool("verbose") {
		clio.SetLevelFromString("debug")
	}

	path, err := localStatePath(allFlags.String("local-state"), allFlags.Bool("canary"))
	if err != nil {
		return handle(err, path)
	}
	clio.Debugf("using local state file %s", path)

	profileID := c.Args().First()
	if profileID == "" {
		if !testable.Interactive() {
			return clierr.New("A PROFILE_ID argument is required",
				clierr.Infof("Usage: %s [--dry-run] [--canary] PROFILE_ID", build.BinaryName()),
				clierr.Infof("Run '%s list' to see the available profiles", build.BinaryName()),
			)
		}
		profileID, err = selectProfile(path)
		if err != nil {
			return handle(err, path)
		}
	}

	err = Remove(RemoveOpts{
		Path:      path,
		ProfileID: profileID,
		DryRun:    allFlags.Bool("dry-run"),
		Out:       c.App.Writer,
	})
	return handle(err, path)
}

// selectProfile prompts for one of the profiles in the Local State file.
func selectProfile(path string) (string, error) {
	doc, err := localstate.Load(path)
	if err != nil {
		return "", err
	}
	profiles := doc.Profiles()
	if len(profiles) == 0 {
		return "", localstate.ErrNoProfiles
	}

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}

	in := survey.Select{
		Message: "Please select the profile you would like to remove:",
		Options: ids,
		Description: func(value string, index int) string {
			return profiles[index].Name
		},
	}
	var out string
	err = testable.AskOne(&in, &out)
	if err != nil {
		return "", err
	}
	return out, nil
}
