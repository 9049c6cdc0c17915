// Command peckserver serves the WebAssembly build of Pecking Order through
// an offline asset cache, with a join QR code for phones on the same network.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const releaseVersion = "0.2.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &Config{}
	cmd := newCmd(cfg)
	cmd.SetContext(ctx)
	cobra.CheckErr(cmd.Execute())
}
