package profilerm

import (
	"github.com/common-fate/clio"
	"github.com/common-fate/profilerm/pkg/localstate"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var ListCommand = cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "List the profiles in the Local State file",
	Action: func(c *cli.Context) error {
		path, err := localStatePath(c.String("local-state"), c.Bool("canary"))
		if err != nil {
			return handle(err, path)
		}
		clio.Debugf("using local state file %s", path)

		doc, err := localstate.Load(path)
		if err != nil {
			return handle(err, path)
		}
		profiles := doc.Profiles()
		if len(profiles) == 0 {
			return handle(localstate.ErrNoProfiles, path)
		}

		data := make([][]string, 0, len(profiles))
		for _, p := range profiles {
			lastUsed := ""
			if p.LastUsed {
				lastUsed = color.GreenString("*")
			}
			data = append(data, []string{p.ID, p.Name, lastUsed})
		}

		table := tablewriter.NewWriter(c.App.Writer)
		table.SetHeader([]string{"ID", "NAME", "LAST USED"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}
