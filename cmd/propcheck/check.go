package main

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/propcheck"
	"github.com/reoring/propcheck/i18n"
	"github.com/reoring/propcheck/schemadoc"
	"github.com/reoring/propcheck/source"
)

// errInvalid signals a completed check that found errors; main exits 1
// without printing it again.
var errInvalid = errors.New("document is invalid")

type checkOptions struct {
	schemaPath string
	dataPath   string
	format     string
	failFast   bool
	maxBytes   int64
	strictKeys bool
}

func newCheckCmd() *cobra.Command {
	var o checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a data file against a schema document",
		Example: `  propcheck check --schema post.schema.yaml --data post.json
  propcheck check -s post.schema.yaml -d post.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, o)
		},
	}
	cmd.Flags().StringVarP(&o.schemaPath, "schema", "s", "", "schema document (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&o.dataPath, "data", "d", "", "data document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&o.format, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&o.failFast, "fail-fast", false, "report only the first failing property")
	cmd.Flags().Int64Var(&o.maxBytes, "max-bytes", 0, "reject data documents larger than this (0 = unlimited)")
	cmd.Flags().BoolVar(&o.strictKeys, "strict-keys", false, "reject duplicate top-level keys in JSON data")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func runCheck(cmd *cobra.Command, o checkOptions) error {
	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("unknown output format %q", o.format)
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	lang, _ := cmd.Flags().GetString("lang")

	engine := propcheck.New(
		propcheck.WithLogger(logger),
		propcheck.WithFailFast(o.failFast),
		propcheck.WithTranslator(i18n.Dictionary(lang)),
	)

	doc, err := schemadoc.Load(o.schemaPath)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	schema, err := doc.Compile(engine)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	logger.Debug("schema compiled", zap.String("path", o.schemaPath), zap.Int("properties", len(schema)))

	values, err := source.ReadFile(o.dataPath, source.Options{MaxBytes: o.maxBytes, RejectDuplicateKeys: o.strictKeys})
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	errs := engine.GetErrors(schema, values)
	if err := writeResult(cmd, o.format, errs); err != nil {
		return err
	}
	if len(errs) > 0 {
		return errInvalid
	}
	return nil
}

func writeResult(cmd *cobra.Command, format string, errs propcheck.ErrorRecords) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		b, err := json.MarshalIndent(struct {
			Valid  bool                   `json:"valid"`
			Errors propcheck.ErrorRecords `json:"errors"`
		}{Valid: len(errs) == 0, Errors: errs}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	if len(errs) == 0 {
		_, err := fmt.Fprintln(out, "valid")
		return err
	}
	for _, e := range errs {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", e.Code, e.Property, e.Message); err != nil {
			return err
		}
	}
	return nil
}
