// Package main provides the CLI entry point for sheetmap.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap"
	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

var (
	outputPath  string
	pretty      bool
	sheetIndex  int
	mappingPath string
	strict      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetmap",
		Short: "Convert xlsx spreadsheets to validated tables and records",
		Long: `sheetmap reads xlsx files into generic tables or mapped rows,
validating required columns and empty cells against a declarative
column mapping, and dumps the result as JSON.`,
		SilenceUsage: true,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Read a sheet as a generic table and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	dumpCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	dumpCmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Optional column mapping file (YAML) for validation")

	checkCmd := &cobra.Command{
		Use:   "check [input.xlsx]",
		Short: "Read mapped rows against a column mapping and report violations",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Column mapping file (YAML)")
	checkCmd.MarkFlagRequired("mapping")

	for _, c := range []*cobra.Command{dumpCmd, checkCmd} {
		c.Flags().IntVar(&sheetIndex, "sheet", 0, "Zero-based sheet index")
		c.Flags().BoolVar(&strict, "strict", false, "Abort on the first validation error")
		rootCmd.AddCommand(c)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newHandler() *sheetmap.Handler {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return sheetmap.New(sheetmap.WithLogger(log))
}

func callOptions() []sheetmap.Option {
	opts := []sheetmap.Option{sheetmap.Sheet(sheetIndex)}
	if strict {
		opts = append(opts, sheetmap.StopOnError())
	}
	return opts
}

func runDump(cmd *cobra.Command, args []string) error {
	var settings *models.Settings
	if mappingPath != "" {
		s, err := loadMapping(mappingPath)
		if err != nil {
			return err
		}
		settings = s
	}

	table, err := newHandler().ReadTable(args[0], settings, callOptions()...)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	return writeJSON(table)
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := loadMapping(mappingPath)
	if err != nil {
		return err
	}

	doc, err := newHandler().ReadRows(args[0], settings, callOptions()...)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	fmt.Printf("%d rows mapped\n", len(doc.Rows))
	return nil
}

func writeJSON(v any) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
