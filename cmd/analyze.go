package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/finhealth/internal/analyzer"
	"github.com/sells-group/finhealth/internal/model"
)

var (
	analyzeFile        string
	analyzeOutput      string
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze financial profiles from a local file",
	Long: `Analyze one or more financial profiles without running the server.

The input file may be JSON or YAML, containing either a single profile
object or an array of profiles. Profiles are analyzed concurrently;
individual failures are logged and skipped.

Examples:
  # Analyze a single profile
  analyze --file profile.json

  # Analyze a batch and write reports to a file
  analyze --file profiles.yaml --output reports.json --concurrency 8`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFile, "file", "", "profile file, JSON or YAML (required)")
	f.StringVar(&analyzeOutput, "output", "", "write reports to file instead of stdout")
	f.IntVar(&analyzeConcurrency, "concurrency", 0, "concurrent analyses (default from config)")
	analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	docs, single, err := loadProfileDocs(analyzeFile)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		zap.L().Info("no profiles found in input")
		return nil
	}

	concurrency := analyzeConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Analyze.Concurrency
	}

	zap.L().Info("analyzing profiles",
		zap.Int("profiles", len(docs)),
		zap.Int("concurrency", concurrency),
	)

	a := analyzer.New()
	reports := make([]*model.Report, len(docs))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			profile, err := model.DecodeProfile(doc)
			if err != nil {
				failed.Add(1)
				zap.L().Error("profile rejected",
					zap.Int("index", i),
					zap.Error(err),
				)
				return nil // don't abort batch on individual failure
			}

			report := a.Analyze(profile)
			reports[i] = &report
			succeeded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "analyze batch")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)

	return writeReports(reports, single)
}

// loadProfileDocs reads the input file and returns each profile as a
// JSON document, plus whether the input was a single object. YAML input
// is converted to JSON so both formats share one decode path.
func loadProfileDocs(path string) ([][]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, eris.Wrap(err, "analyze: read input file")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, false, eris.Wrap(err, "analyze: parse yaml")
		}
		data, err = json.Marshal(v)
		if err != nil {
			return nil, false, eris.Wrap(err, "analyze: convert yaml")
		}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		docs := make([][]byte, len(list))
		for i, raw := range list {
			docs[i] = raw
		}
		return docs, false, nil
	}

	// Not an array; validate that it is at least a JSON object.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false, eris.Wrap(err, "analyze: parse input")
	}
	return [][]byte{data}, true, nil
}

// writeReports encodes results to the output destination. Single-profile
// input yields one object, batch input an array with failures omitted.
func writeReports(reports []*model.Report, single bool) error {
	var out any
	if single && len(reports) == 1 && reports[0] != nil {
		out = reports[0]
	} else {
		kept := []model.Report{}
		for _, r := range reports {
			if r != nil {
				kept = append(kept, *r)
			}
		}
		out = kept
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return eris.Wrap(err, "analyze: encode reports")
	}
	encoded = append(encoded, '\n')

	if analyzeOutput == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(analyzeOutput, encoded, 0o644); err != nil {
		return eris.Wrap(err, "analyze: write output file")
	}
	zap.L().Info("reports written", zap.String("path", analyzeOutput))
	return nil
}
