package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rompatch/go-rompatch/ips"
	"github.com/scott-cotton/cli"
)

type infoConfig struct {
	*cli.Command
	Color bool `cli:"name=color desc='force colored output'"`
}

// InfoCommand returns the info subcommand.
func InfoCommand() *cli.Command {
	cfg := &infoConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "info").
		WithSynopsis("info [--color] <patch> - Describe a patch's hunks").
		WithOpts(opts...).
		WithRun(cfg.run)
}

// palette holds the sprint funcs used for hunk listings. The zero styling
// (colorDefault for every entry) is used when output is not a terminal.
type palette struct {
	kind  func(string, ...any) string
	num   func(string, ...any) string
	trunc func(string, ...any) string
}

func colorDefault(format string, a ...any) string { return fmt.Sprintf(format, a...) }

func plainPalette() *palette {
	return &palette{kind: colorDefault, num: colorDefault, trunc: colorDefault}
}

func colorPalette() *palette {
	return &palette{
		kind:  color.CyanString,
		num:   color.YellowString,
		trunc: color.MagentaString,
	}
}

func (cfg *infoConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		return colorPalette()
	}
	f, ok := w.(*os.File)
	if !ok {
		return plainPalette()
	}
	if isatty.IsTerminal(f.Fd()) {
		return colorPalette()
	}
	return plainPalette()
}

func (cfg *infoConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: ips info [--color] <patch>", cli.ErrUsage)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open patch: %w", err)
	}
	defer f.Close()

	patch, err := ips.Read(f)
	if err != nil {
		return err
	}

	pal := cfg.palette(cc.Out)
	fmt.Fprintf(cc.Out, "%s: %s hunks\n", args[0], pal.num("%d", len(patch.Hunks)))
	for i := range patch.Hunks {
		h := &patch.Hunks[i]
		fmt.Fprintf(cc.Out, "  %s  offset=%s span=%s\n",
			pal.kind("%-7s", h.Type),
			pal.num("0x%06x", h.Offset),
			pal.num("%d", h.Span()))
	}
	if patch.Truncate != nil {
		fmt.Fprintf(cc.Out, "truncate to %s bytes\n", pal.trunc("%d", *patch.Truncate))
	}
	return nil
}
