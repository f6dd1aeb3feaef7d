// Package app contains the CLI application constructor.
package app

import (
	"github.com/urfave/cli"

	"github.com/xrpl-wasm/xrpl-go/cli/contract"
	"github.com/xrpl-wasm/xrpl-go/pkg/config"
)

// New creates the xrpl-go CLI application with the contract commands
// registered.
func New() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "xrpl-go"
	ctl.Version = config.Version
	ctl.Usage = "Assemble XRPL WASM smart contract transactions"
	ctl.ErrWriter = nil

	ctl.Commands = append(ctl.Commands, contract.NewCommands()...)
	return ctl
}
