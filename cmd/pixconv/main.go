// Command pixconv inspects pixel formats and converts images and raw pixel
// buffers between them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/pixfmt/cmd/pixconv/cmd"
)

var (
	GitSHA string = "NA"
)

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()

	if err := cmd.NewRoot(ctx, GitSHA).ExecuteContext(ctx); err != nil {
		cnc()
		os.Exit(1)
	}
}
