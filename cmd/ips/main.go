package main

import (
	"context"

	"github.com/rompatch/go-rompatch/cmd/ips/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
