package main

import (
	"fmt"
	"os"

	"github.com/xrpl-wasm/xrpl-go/cli/app"
)

func main() {
	ctl := app.New()

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
