// Package main contains the sqlbridge CLI. It wires the schema parser, the
// dialect generator, and the validators behind cobra subcommands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sqlbridge/internal/config"
	"sqlbridge/internal/generate"
	"sqlbridge/internal/mapping"
	"sqlbridge/internal/output"
	"sqlbridge/internal/parser"
	"sqlbridge/internal/validate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sqlbridge",
		Short: "CREATE TABLE parser and multi-dialect SQL generator",
	}

	var cfgFile string
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "path to sqlbridge.toml")

	rootCmd.AddCommand(parseCmd(&cfgFile))
	rootCmd.AddCommand(generateCmd(&cfgFile))
	rootCmd.AddCommand(validateCmd(&cfgFile))
	rootCmd.AddCommand(mapCmd(&cfgFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newParser(cfg config.Config, strict bool) *parser.Parser {
	if strict || cfg.Strict {
		return parser.NewStrictParser()
	}
	return parser.NewParser()
}

func parseCmd(cfgFile *string) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "parse <schema.sql>",
		Short: "Parse a CREATE TABLE statement and print the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			schema, err := newParser(cfg, strict).ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}
			fmt.Print(schema.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on clauses the parser cannot understand")
	return cmd
}

func generateCmd(cfgFile *string) *cobra.Command {
	var outDir string
	var format string
	cmd := &cobra.Command{
		Use:   "generate <schema.sql>",
		Short: "Generate dialect-specific SQL artifacts for every supported database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			if err := validate.SchemaFile(args[0]); err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			gen := generate.New()
			if len(cfg.Dialects) > 0 {
				gen = generate.NewForDialects(cfg.Dialects)
			}
			results, err := gen.GenerateFile(args[0], cfg.OutputDir)
			if err != nil {
				return err
			}
			docFile, err := gen.WriteConnectionDocs(cfg.OutputDir)
			if err != nil {
				return err
			}

			f, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			text, err := f.FormatResults(results)
			if err != nil {
				return err
			}
			fmt.Print(text)
			fmt.Printf("connection docs: %s\n", docFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVarP(&format, "format", "f", "summary", "output format: summary or json")
	return cmd
}

func validateCmd(cfgFile *string) *cobra.Command {
	var strict bool
	var format string
	cmd := &cobra.Command{
		Use:   "validate <schema.sql>",
		Short: "Validate a schema file and syntax-check it against an in-memory database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			if err := validate.SchemaFile(args[0]); err != nil {
				return err
			}
			schema, err := newParser(cfg, strict).ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}

			report := validate.Schema(schema)
			syntax, err := validate.SyntaxFromSchema(cmd.Context(), schema)
			if err != nil {
				return err
			}

			f, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			text, err := f.FormatReport(report, syntax)
			if err != nil {
				return err
			}
			fmt.Print(text)
			if !report.OK() {
				return fmt.Errorf("schema validation failed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on clauses the parser cannot understand")
	cmd.Flags().StringVarP(&format, "format", "f", "summary", "output format: summary or json")
	return cmd
}

func mapCmd(cfgFile *string) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "map <schema.sql> <col1,col2,...>",
		Short: "Show how spreadsheet columns map onto schema fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			schema, err := newParser(cfg, strict).ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}

			header := strings.Split(args[1], ",")
			result := mapping.MatchColumns(schema, header)
			for _, m := range result.Matches {
				fmt.Printf("%s <- column %d (%s)\n", m.Field, m.Index, m.Column)
			}
			for _, missing := range result.MissingRequired {
				fmt.Printf("%s <- MISSING (required)\n", missing)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on clauses the parser cannot understand")
	return cmd
}
