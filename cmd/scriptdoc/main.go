package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/scriptdoc/internal/config"
	"github.com/g5becks/scriptdoc/internal/ui"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args)
	stop()

	if err != nil {
		ui.NewPrinter(false).Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	return newRootCommand().Run(ctx, args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "scriptdoc",
		Usage:     "Generate the library documentation model from $function/$doc/$arg comment annotations",
		ArgsUsage: "FILE...",
		Version:   versionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write output to a file instead of stdout"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: json, yaml, table, markdown, html"},
			&cli.IntFlag{Name: "indent", Usage: "Indent width for json and yaml output", Value: config.DefaultIndent},
			&cli.BoolFlag{Name: "strict", Usage: "Fail when a function lacks a group or documentation"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "Exclude glob pattern applied to expanded inputs (repeatable)"},
			&cli.DurationFlag{Name: "timeout", Usage: "Timeout for URL inputs", Value: config.DefaultTimeout},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Report progress and a summary on stderr"},
		},
		Action: generateAction,
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
