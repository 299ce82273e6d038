// Package profilerm is the command line interface for removing a Chrome
// profile from the browser's Local State file.
package profilerm

import (
	"os"

	"github.com/common-fate/clio"
	"github.com/common-fate/profilerm/internal/build"
	"github.com/common-fate/profilerm/pkg/banners"
	"github.com/urfave/cli/v2"
)

// GlobalFlags are accepted on either side of the PROFILE_ID argument.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
	&cli.BoolFlag{Name: "dry-run", Usage: "Print the resulting JSON instead of writing it to the Local State file"},
	&cli.BoolFlag{Name: "canary", Usage: "Use the Chrome Canary profile path"},
	&cli.StringFlag{Name: "local-state", Usage: "Path to a Local State file, overriding the platform default", EnvVars: []string{"PROFILERM_LOCAL_STATE"}},
}

func GetCliApp() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		clio.Log(banners.WithVersion())
	}

	app := &cli.App{
		Flags:       GlobalFlags,
		Name:        "profilerm",
		Usage:       "Remove a Chrome profile from the Local State file",
		UsageText:   "profilerm [--dry-run] [--canary] [--local-state PATH] PROFILE_ID\n   profilerm [--canary] [--local-state PATH] list",
		Description: "Removes the profile from Chrome's registry of profiles. The profile folder on disk is left untouched.",
		Version:     build.Version,
		HideVersion: false,
		Commands: []*cli.Command{
			&ListCommand,
		},
		Action: func(c *cli.Context) error {
			return removeAction(c, os.Args)
		},
		EnableBashCompletion: true,
		Before: func(c *cli.Context) error {
			clio.SetLevelFromEnv("PROFILERM_LOG")
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			return nil
		},
	}

	return app
}
