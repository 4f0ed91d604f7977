package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/scriptdoc/internal/config"
	"github.com/g5becks/scriptdoc/internal/libdoc"
	"github.com/g5becks/scriptdoc/internal/render"
	"github.com/g5becks/scriptdoc/internal/source"
	"github.com/g5becks/scriptdoc/internal/ui"
)

func generateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: scriptdoc [flags] FILE...").
			Errorf("expected at least 1 input file")
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	if valErr := cfg.Validate(); valErr != nil {
		return valErr
	}

	printer := ui.NewPrinterWithWriter(cmd.Root().ErrWriter, cmd.Bool("verbose"))

	inputs, err := source.Expand(cmd.Args().Slice(), cfg.Exclude)
	if err != nil {
		return err
	}

	model, err := parseInputs(ctx, inputs, cfg, printer)
	if err != nil {
		return err
	}

	if cfg.Strict {
		if issues := libdoc.Check(model); len(issues) > 0 {
			printer.Issues(issues)
			return oops.
				Code("VALIDATION_FAILED").
				With("issues", len(issues)).
				Hint("Add $group and $doc annotations, or drop --strict").
				Errorf("%d documentation issue(s) found", len(issues))
		}
	}

	opts := render.Options{Format: cfg.Format, Indent: cfg.Indent}
	if cfg.Output != "" {
		err = render.WriteFile(cfg.Output, model, opts)
	} else {
		err = render.Write(cmd.Root().Writer, model, opts)
	}
	if err != nil {
		return err
	}

	printer.Summary(len(model.Functions), len(inputs), cfg.Output)
	return nil
}

// applyFlags lets explicitly set flags override config file values.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("output") {
		output := cmd.String("output")
		if output != "" && !filepath.IsAbs(output) {
			if abs, err := filepath.Abs(output); err == nil {
				output = abs
			}
		}
		cfg.Output = output
	}
	if cmd.IsSet("format") {
		cfg.Format = strings.ToLower(cmd.String("format"))
	}
	if cmd.IsSet("indent") {
		cfg.Indent = cmd.Int("indent")
	}
	if cmd.IsSet("strict") {
		cfg.Strict = cmd.Bool("strict")
	}
	if cmd.IsSet("exclude") {
		cfg.Exclude = append(cfg.Exclude, cmd.StringSlice("exclude")...)
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
}

func parseInputs(ctx context.Context, inputs []string, cfg *config.Config, printer *ui.Printer) (*libdoc.Model, error) {
	reader := source.NewReader(cfg.Timeout)
	defer func() {
		_ = reader.Close()
	}()

	parser := libdoc.NewParser()
	for _, input := range inputs {
		lines, err := reader.ReadLines(ctx, input)
		if err != nil {
			return nil, err
		}

		if parseErr := parser.ParseLines(input, lines); parseErr != nil {
			return nil, wrapParseError(parseErr)
		}

		printer.Input(input, len(lines), parser.Len())
	}

	return parser.Model(), nil
}

func wrapParseError(err error) error {
	var libErr *libdoc.Error
	if !errors.As(err, &libErr) {
		return oops.Wrapf(err, "parsing annotations")
	}

	return oops.
		Code(libErr.Kind.Code()).
		With("file", libErr.File).
		With("line", libErr.Line).
		With("name", libErr.Name).
		Hint(parseErrorHint(libErr.Kind)).
		Wrap(libErr)
}

func parseErrorHint(kind libdoc.Kind) string {
	switch kind {
	case libdoc.KindOutOfScope:
		return "Start the block with a $function annotation"
	case libdoc.KindDuplicateFunction:
		return "Function names must be unique across all input files"
	case libdoc.KindGroupRedefined:
		return "Each function takes a single $group annotation"
	case libdoc.KindArgRedefined:
		return "Keep all $arg lines for one argument together"
	case libdoc.KindEmptyName:
		return "Function, group, and arg names cannot be blank"
	default:
		return ""
	}
}
