package main

import (
	"fmt"
	"os"

	"github.com/b/tmate/pkg/bootstrap"
	"github.com/b/tmate/pkg/client"
)

func main() {
	cmd := newRootCmd(os.Args[0], func(opts bootstrap.Options) int {
		ctx, err := bootstrap.Run(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tmate: %v\n", err)
			return 1
		}
		return client.Main(ctx)
	})
	os.Exit(execute(cmd, os.Args[1:]))
}
