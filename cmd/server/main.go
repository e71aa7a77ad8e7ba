// Command server runs the care placement HTTP API.
//
// Flags:
//
//	--env-help  print the environment variables the server reads and exit
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kceleski/ava-care-compass/internal/app"
	"github.com/kceleski/ava-care-compass/internal/config"
)

func main() {
	envHelp := flag.Bool("env-help", false, "print supported environment variables and exit")
	flag.Parse()

	if *envHelp {
		usage, err := config.Usage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "server: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(usage)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
