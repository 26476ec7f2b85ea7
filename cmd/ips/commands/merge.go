package commands

import (
	"fmt"
	"os"

	"github.com/rompatch/go-rompatch/ips"
	"github.com/scott-cotton/cli"
)

type mergeConfig struct {
	*cli.Command
}

// MergeCommand returns the merge subcommand.
func MergeCommand() *cli.Command {
	cfg := &mergeConfig{}
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithSynopsis("merge <out> <patch>... - Combine patches into one").
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: ips merge <out> <patch>...", cli.ErrUsage)
	}

	patches := make([]*ips.Patch, 0, len(args)-1)
	for _, name := range args[1:] {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open patch: %w", err)
		}
		patch, err := ips.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		patches = append(patches, patch)
	}

	merged, err := ips.Merge(patches...)
	if err != nil {
		return err
	}

	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()
	if err := merged.Write(out); err != nil {
		return fmt.Errorf("failed to write merged patch: %w", err)
	}
	fmt.Fprintf(cc.Out, "wrote %d hunks to %s\n", len(merged.Hunks), args[0])
	return nil
}
