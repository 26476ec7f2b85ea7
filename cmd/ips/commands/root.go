package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `ips - IPS patch tool

Usage:
  ips apply [--buffered] <patch> <target>  Apply a patch to a file in place
  ips info [--color] <patch>               Describe a patch's hunks
  ips merge <out> <patch>...               Combine patches into one

Examples:
  ips apply fix.ips game.bin
  ips apply --buffered fix.ips game.bin
  ips info fix.ips
  ips merge all.ips base.ips fix1.ips fix2.ips`

// Root returns the root command for ips.
func Root() *cli.Command {
	return cli.NewCommand("ips").
		WithSynopsis("ips - IPS patch tool").
		WithDescription(usageText).
		WithSubs(
			ApplyCommand(),
			InfoCommand(),
			MergeCommand(),
		)
}
