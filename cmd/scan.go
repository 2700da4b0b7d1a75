package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	typediscover "github.com/gnolang/typediscover"
	"github.com/gnolang/typediscover/internal/config"
	"github.com/gnolang/typediscover/internal/report"
	"github.com/gnolang/typediscover/internal/types"
	"github.com/gnolang/typediscover/scanner"
)

var (
	scanJSONOutput bool
	scanOutputPath string
	scanNoHeader   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Discover the narrowest column type for one or more delimited-text files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		runScan(ctx, logger, cfg, args, scanJSONOutput, scanOutputPath, scanNoHeader)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSONOutput, "json", false, "Output the report as JSON")
	scanCmd.Flags().StringVarP(&scanOutputPath, "output", "o", "", "Output path (default stdout)")
	scanCmd.Flags().BoolVar(&scanNoHeader, "no-header", false, "Treat the first row of every file as data, not a header")
}

func runScan(ctx context.Context, logger *zap.Logger, cfg config.Config, paths []string, jsonOutput bool, outputPath string, noHeader bool) {
	var allReports []types.ColumnReport

	for _, path := range paths {
		files, err := resolveFiles(cfg, path)
		if err != nil {
			logger.Error("Error resolving path", zap.String("path", path), zap.Error(err))
			continue
		}

		for _, file := range files {
			reports, err := discoverFile(ctx, cfg, file, noHeader)
			if err != nil {
				logger.Error("Error discovering file", zap.String("file", file.Path), zap.Error(err))
				continue
			}
			allReports = append(allReports, reports...)
		}
	}

	printReports(logger, allReports, jsonOutput, outputPath)
}

// resolveFiles expands path into the files a scan should cover. A single
// file uses cfg.Delimiter as given; a directory is handed to scanner,
// which sniffs each file's own delimiter instead of assuming cfg.Delimiter
// applies uniformly across a mixed .csv/.tsv tree.
func resolveFiles(cfg config.Config, path string) ([]scanner.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		delim := ','
		if cfg.Delimiter != "" {
			delim = []rune(cfg.Delimiter)[0]
		}
		return []scanner.FileInfo{{Path: path, Size: info.Size(), Delimiter: delim}}, nil
	}

	found, err := scanner.New(path, cfg.Extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return found, nil
}

func discoverFile(ctx context.Context, cfg config.Config, file scanner.FileInfo, noHeader bool) ([]types.ColumnReport, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = file.Delimiter
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var headers []string
	dataRows := rows
	if !noHeader {
		headers = rows[0]
		dataRows = rows[1:]
	} else {
		headers = make([]string, len(rows[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	verdicts, err := typediscover.DiscoverColumns(ctx, dataRows)
	if err != nil {
		return nil, err
	}

	prefix := filepath.Base(file.Path)
	reports := make([]types.ColumnReport, 0, len(verdicts))
	for i, verdict := range verdicts {
		header := prefix + ":" + safeHeader(headers, i)
		if cfg.IsIgnored(safeHeader(headers, i)) {
			continue
		}
		if verdict == types.Empty {
			verdict = cfg.EmptyColumnDefault()
		}
		reports = append(reports, types.ColumnReport{
			Header: header,
			Type:   verdict,
			Fields: len(dataRows),
		})
	}
	return reports, nil
}

func safeHeader(headers []string, i int) string {
	if i < len(headers) {
		return strings.TrimSpace(headers[i])
	}
	return fmt.Sprintf("column_%d", i+1)
}

func printReports(logger *zap.Logger, reports []types.ColumnReport, jsonOutput bool, outputPath string) {
	var out []byte
	var err error

	if jsonOutput {
		out, err = report.RenderJSON(reports)
		if err != nil {
			logger.Error("Error rendering JSON report", zap.Error(err))
			return
		}
	} else {
		out = []byte(report.Render(reports))
	}

	if outputPath == "" {
		fmt.Println(string(out))
		return
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		logger.Error("Error writing report", zap.String("path", outputPath), zap.Error(err))
	}
}
