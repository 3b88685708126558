package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: transport-catalogue [-config path] make_base|process_requests

  make_base         read a base document from stdin and write the snapshot
  process_requests  read stat requests from stdin and print answers to stdout
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transport-catalogue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config.yml (default: search config.yml, ./config/config.yml)")
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	app, err := newApp(*configPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "transport-catalogue: %v\n", err)
		return 1
	}

	switch fs.Arg(0) {
	case "make_base":
		err = app.makeBase(ctx, stdin)
	case "process_requests":
		err = app.processRequests(ctx, stdin, stdout)
	default:
		fs.Usage()
		return 1
	}
	if err != nil {
		app.fail(fs.Arg(0), err)
		return 1
	}
	return 0
}
