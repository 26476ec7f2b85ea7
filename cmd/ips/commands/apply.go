package commands

import (
	"fmt"
	"os"

	"github.com/rompatch/go-rompatch/ips"
	"github.com/scott-cotton/cli"
)

type applyConfig struct {
	*cli.Command
	Buffered bool `cli:"name=buffered aliases=b desc='parse the whole patch before applying'"`
}

// ApplyCommand returns the apply subcommand.
func ApplyCommand() *cli.Command {
	cfg := &applyConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "apply").
		WithSynopsis("apply [--buffered] <patch> <target> - Apply a patch to a file in place").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *applyConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: ips apply [--buffered] <patch> <target>", cli.ErrUsage)
	}

	patchFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open patch: %w", err)
	}
	defer patchFile.Close()

	target, err := os.OpenFile(args[1], os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open target: %w", err)
	}
	defer target.Close()

	if cfg.Buffered {
		patch, err := ips.Read(patchFile)
		if err != nil {
			return err
		}
		if err := patch.Apply(target); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "applied %d hunks to %s\n", len(patch.Hunks), args[1])
		return nil
	}

	if err := ips.ApplyStream(patchFile, target); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "applied %s to %s\n", args[0], args[1])
	return nil
}
