package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	startAt := flag.String("location", "", "initial location, e.g. marquee://characters?film=Fantasia (optional)")
	flag.Parse()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath, Location: *startAt}
	if opts.Location == "" && flag.NArg() > 0 {
		opts.Location = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	final, err := app.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	fmt.Println(final.String())
	return 0
}
