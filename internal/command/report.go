package command

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/tokenaudit/internal/config"
	"github.com/raphaelgruber/tokenaudit/internal/detect"
	"github.com/raphaelgruber/tokenaudit/internal/export"
	"github.com/raphaelgruber/tokenaudit/internal/report"
	"github.com/raphaelgruber/tokenaudit/internal/tokenizer"
	"github.com/raphaelgruber/tokenaudit/internal/usage"
)

func runReport(cmd *cobra.Command, opts *options, cfg *config.Config, logger *slog.Logger) error {
	printer := report.NewPrinter(cmd.OutOrStdout(), report.Options{
		ShowCost:   opts.showCost,
		TopN:       cfg.TopN,
		TitleWidth: cfg.TitleWidth,
		Rate:       cfg.RateFor,
	})

	printer.Reading(opts.file)
	exp, err := loadExport(opts.file, logger)
	if err != nil {
		return err
	}

	models := detectModels(exp, cfg, logger)
	printer.Detected(models)

	progress := report.NewProgress(cmd.ErrOrStderr())
	results, err := analyze(exp, models, cfg, progress.Update, logger)
	if err != nil {
		return err
	}

	printer.Print(results)
	return nil
}

func loadExport(path string, logger *slog.Logger) (*export.Export, error) {
	start := time.Now()
	exp, err := export.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded export", "path", path, "conversations", exp.Len(), "elapsed", time.Since(start))
	return exp, nil
}

func detectModels(exp *export.Export, cfg *config.Config, logger *slog.Logger) []string {
	found := detect.FindModels(exp.Tree)
	if len(found) == 0 {
		logger.Debug("no models in export, using defaults", "models", cfg.DefaultModels)
	}
	return detect.ModelsOrDefault(found, cfg.DefaultModels)
}

// analyze resolves tokenizers and aggregates usage for every model.
func analyze(exp *export.Export, models []string, cfg *config.Config, progress usage.ProgressFunc, logger *slog.Logger) ([]usage.Result, error) {
	resolver := tokenizer.NewResolver(cfg.FallbackEncoding)
	resolve := func(model string) (tokenizer.Tokenizer, string, error) {
		enc, warning, err := resolver.Resolve(model)
		if err != nil {
			return nil, "", err
		}
		if warning != "" {
			logger.Debug("tokenizer fallback", "model", model, "encoding", enc.Name(), "reason", warning)
		} else {
			logger.Debug("resolved tokenizer", "model", model)
		}
		return enc, warning, nil
	}

	start := time.Now()
	results, err := usage.Analyze(exp, models, resolve, usage.Options{
		TopN:     cfg.TopN,
		Progress: progress,
	})
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		logger.Debug("aggregated", "model", res.Model, "messages", res.TotalMessages, "tokens", res.TotalTokens)
	}
	logger.Debug("analysis complete", "models", len(results), "elapsed", time.Since(start))
	return results, nil
}
