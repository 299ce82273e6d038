package cfflags

import (
	"errors"
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

type Flags struct {
	FlagSet    *flag.FlagSet
	urFavFlags []cli.Flag
}

// urfave/cli stops parsing flags at the first positional argument, so
// `profilerm "Profile 1" --dry-run` would treat --dry-run as an argument.
// New parses the flags on both sides of the profile ID argument.
//
// argv is the full command line including the program name, as passed to
// (*cli.App).Run. The first element of c.Args() is the positional argument,
// everything after it is a flag.
//
//	allFlags, err := cfflags.New("remove", GlobalFlags, c, os.Args)
//	allFlags.Bool("dry-run")
func New(name string, flags []cli.Flag, c *cli.Context, argv []string) (*Flags, error) {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, f := range flags {
		if err := f.Apply(set); err != nil {
			return nil, err
		}
	}

	set.SetOutput(io.Discard)

	// the flags given before the positional argument
	end := len(argv) - c.Args().Len()
	if end < 1 {
		end = 1
	}
	ag := []string{}
	if len(argv) > 1 {
		ag = append(ag, argv[1:end]...)
	}
	// and the ones after it
	if c.Args().Len() > 1 {
		ag = append(ag, c.Args().Slice()[1:]...)
	}

	err := normalizeFlags(flags, set)
	if err != nil {
		return nil, err
	}
	err = set.Parse(ag)
	if err != nil {
		return nil, err
	}
	return &Flags{FlagSet: set, urFavFlags: flags}, nil
}

func copyFlag(name string, ff *flag.Flag, set *flag.FlagSet) {
	switch ff.Value.(type) {
	case cli.Serializer:
		_ = set.Set(name, ff.Value.(cli.Serializer).Serialize())
	default:
		_ = set.Set(name, ff.Value.String())
	}
}

func normalizeFlags(flags []cli.Flag, set *flag.FlagSet) error {
	visited := make(map[string]bool)
	set.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	for _, f := range flags {
		parts := f.Names()
		if len(parts) == 1 {
			continue
		}
		var ff *flag.Flag
		for _, name := range parts {
			name = strings.Trim(name, " ")
			if visited[name] {
				if ff != nil {
					return errors.New("Cannot use two forms of the same flag: " + name + " " + ff.Name)
				}
				ff = set.Lookup(name)
			}
		}
		if ff == nil {
			continue
		}
		for _, name := range parts {
			name = strings.Trim(name, " ")
			if !visited[name] {
				copyFlag(name, ff, set)
			}
		}
	}
	return nil
}

func (set *Flags) searchFS(name string) []string {
	for _, f := range set.urFavFlags {
		for _, n := range f.Names() {
			if n == name {
				return f.Names()
			}
		}
	}
	return nil
}

func (set *Flags) String(name string) string {
	names := set.searchFS(name)
	for _, n := range names {
		f := set.FlagSet.Lookup(n)
		if f != nil {
			parsed := f.Value.String()
			if parsed != "" {
				return parsed
			}
		}
	}
	return ""
}

func (set *Flags) Bool(name string) bool {
	names := set.searchFS(name)
	for _, n := range names {
		f := set.FlagSet.Lookup(n)
		if f != nil {
			parsed, _ := strconv.ParseBool(f.Value.String())
			if parsed {
				return parsed
			}
		}
	}
	return false
}
