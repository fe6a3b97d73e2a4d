// Package cli implements the sirisx command line tool.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	sirisx "github.com/reoring/sirisx"
	"github.com/reoring/sirisx/internal/config"
	"github.com/reoring/sirisx/siri"
)

// ExitValidation is the exit code used when a document fails validation.
const ExitValidation = 1

type runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *config.Config
	opt sirisx.ParseOpt
}

// App builds the command line application. Exit codes are reported as
// cli.ExitCoder errors from Run and are not acted upon here.
func App(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	r := &runner{stdin: stdin, stdout: stdout, stderr: stderr}
	return &cli.App{
		Name:           "sirisx",
		Usage:          "Validate SIRI-SX situation exchange documents",
		Writer:         stdout,
		ErrWriter:      stderr,
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a sirisx.yaml configuration file"},
			&cli.StringFlag{Name: "format", Usage: "input format: auto, json, xml or yaml"},
			&cli.BoolFlag{Name: "fail-fast", Usage: "stop at the first issue"},
			&cli.BoolFlag{Name: "strict", Usage: "reject unknown keys"},
			&cli.BoolFlag{Name: "geo-bounds", Usage: "check longitude/latitude ranges"},
			&cli.BoolFlag{Name: "allow-offsets", Usage: "accept timestamps with numeric UTC offsets"},
			&cli.Int64Flag{Name: "max-bytes", Usage: "reject inputs larger than this many bytes (0 disables)"},
			&cli.StringFlag{Name: "duplicate-keys", Usage: "duplicate JSON keys: ignore, warn or error"},
			&cli.StringFlag{Name: "output", Value: "text", Usage: "report format: text or json"},
		},
		Before: r.before,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate one or more Siri documents",
				ArgsUsage: "FILE... (- for stdin)",
				Action:    r.validate,
			},
			{
				Name:      "inspect",
				Usage:     "Decode a Siri document and print the typed result",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "print Go values instead of JSON"},
				},
				Action: r.inspect,
			},
			{
				Name:      "stream",
				Usage:     "Validate the situations of a JSON document one at a time",
				ArgsUsage: "FILE",
				Action:    r.stream,
			},
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("format") {
		cfg.Decode.Format = c.String("format")
	}
	if c.IsSet("fail-fast") {
		cfg.Decode.FailFast = c.Bool("fail-fast")
	}
	if c.IsSet("strict") {
		cfg.Decode.Strict = c.Bool("strict")
	}
	if c.IsSet("geo-bounds") {
		cfg.Decode.GeoBounds = c.Bool("geo-bounds")
	}
	if c.IsSet("allow-offsets") {
		cfg.Decode.AllowOffsets = c.Bool("allow-offsets")
	}
	if c.IsSet("max-bytes") {
		cfg.Decode.MaxBytes = c.Int64("max-bytes")
	}
	if c.IsSet("duplicate-keys") {
		cfg.Decode.DuplicateKeys = c.String("duplicate-keys")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opt, err := cfg.Decode.ParseOpt()
	if err != nil {
		return err
	}
	opt.OnWarning = func(it sirisx.Issue) {
		log.Warn().Str("code", it.Code).Str("path", it.Path.String()).Msg(it.Message)
	}
	setupLogging(cfg.Log, r.stderr)
	r.cfg, r.opt = cfg, opt
	return nil
}

func (r *runner) validate(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("validate: at least one FILE is required", 2)
	}
	var reports []fileReport
	failed := 0
	for _, file := range files {
		doc, err := r.decodeFile(c.Context, file)
		n := len(doc.ServiceDelivery.SituationExchangeDelivery.Situations.PtSituationElement)
		if err != nil {
			failed++
			log.Debug().Err(err).Str("file", file).Msg("Validation failed")
		}
		reports = append(reports, newFileReport(file, n, err))
	}
	if err := writeReports(r.stdout, c.String("output"), reports); err != nil {
		return err
	}
	log.Info().Int("files", len(files)).Int("failed", failed).Msg("Validated documents")
	if failed > 0 {
		return cli.Exit("", ExitValidation)
	}
	return nil
}

func (r *runner) inspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("inspect: exactly one FILE is required", 2)
	}
	file := c.Args().First()
	doc, err := r.decodeFile(c.Context, file)
	if err != nil {
		if werr := writeReports(r.stdout, c.String("output"), []fileReport{newFileReport(file, 0, err)}); werr != nil {
			return werr
		}
		return cli.Exit("", ExitValidation)
	}
	if c.Bool("pretty") {
		_, err := pretty.Fprintf(r.stdout, "%# v\n", doc)
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = fmt.Fprintln(r.stdout, string(b))
	return err
}

func (r *runner) stream(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("stream: exactly one FILE is required", 2)
	}
	file := c.Args().First()
	if f := r.formatOf(file); f != "json" {
		return cli.Exit(fmt.Sprintf("stream: only JSON input is supported, got %s", f), 2)
	}
	in, closeFn, err := r.open(file)
	if err != nil {
		return err
	}
	defer closeFn()

	var limited *limitedReader
	if r.opt.MaxBytes > 0 {
		limited = &limitedReader{r: in, n: r.opt.MaxBytes}
		in = limited
	}

	var retrieved, rejected int
	err = siri.StreamSituations(c.Context, sirisx.JSONReader(in), func(i int, s siri.Situation, err error) error {
		retrieved++
		if err != nil {
			rejected++
			iss, _ := sirisx.AsIssues(err)
			for _, it := range iss {
				fmt.Fprintf(r.stdout, "FAIL [%d] %s at %s: %s\n", i, it.Code, it.Path, it.Message)
			}
			return nil
		}
		fmt.Fprintf(r.stdout, "OK   [%d] %s %s\n", i, s.Key(), siri.ReasonTypeOf(s.Reason))
		return nil
	}, r.opt)
	if limited != nil && limited.exceeded {
		fmt.Fprintf(r.stdout, "FAIL %s at %s: input exceeds %d bytes\n", sirisx.CodeTruncated, sirisx.Root, r.opt.MaxBytes)
		log.Warn().Int("retrieved", retrieved).Int64("max_bytes", r.opt.MaxBytes).Msg("Stream truncated")
		return cli.Exit("", ExitValidation)
	}
	if err != nil {
		return err
	}
	log.Info().Int("retrieved", retrieved).Int("rejected", rejected).Msg("Streamed situations")
	if rejected > 0 {
		return cli.Exit("", ExitValidation)
	}
	return nil
}

func (r *runner) decodeFile(ctx context.Context, file string) (siri.Siri, error) {
	in, closeFn, err := r.open(file)
	if err != nil {
		return siri.Siri{}, err
	}
	defer closeFn()

	format := r.formatOf(file)
	log.Debug().Str("file", file).Str("format", format).Msg("Decoding document")
	switch format {
	case "xml":
		return siri.DecodeSiriXML(ctx, in, r.opt)
	case "yaml":
		data, err := readAll(in, r.opt.MaxBytes)
		if err != nil {
			return siri.Siri{}, err
		}
		return siri.DecodeSiriYAML(ctx, data, r.opt)
	default:
		return siri.DecodeSiriReader(ctx, in, r.opt)
	}
}

func readAll(in io.Reader, max int64) ([]byte, error) {
	if max > 0 {
		return sirisx.ReadLimited(in, max)
	}
	var buf bytes.Buffer
	_, err := buf.ReadFrom(in)
	return buf.Bytes(), err
}

func (r *runner) formatOf(file string) string {
	if f := strings.ToLower(r.cfg.Decode.Format); f != "" && f != "auto" {
		return f
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xml":
		return "xml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func (r *runner) open(file string) (io.Reader, func(), error) {
	if file == "-" {
		return r.stdin, func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, cli.Exit(fmt.Sprintf("no such file: %s", file), 2)
		}
		return nil, nil, fmt.Errorf("open %s: %w", file, err)
	}
	return f, func() { f.Close() }, nil
}
