package main

import (
	"github.com/user/memedraw/pkg/config"
	"github.com/user/memedraw/pkg/orchestrator"
	"github.com/user/memedraw/pkg/summarizer"
)

// runSummary converts a single run into a Summary.
func runSummary(result orchestrator.RunResult, orchConfig orchestrator.Config, cfg config.Config) *summarizer.Summary {
	b := summarizer.NewBuilder().
		WithInput(result.InputPath, result.InputFormat, result.Width, result.Height).
		WithSettings(settings(orchConfig, cfg)).
		WithOutput(summarizer.OutputInfo{
			Path:     result.OutputPath,
			Format:   result.OutputFormat,
			Quality:  result.Quality,
			FileSize: int64(result.OutputBytes),
		}).
		WithTiming(result.DecodeTime, result.DrawTime, result.EncodeTime, result.TotalTime)

	for _, c := range result.Captions {
		b.AddCaption(summarizer.CaptionInfo{
			Placement:  c.Placement.String(),
			Text:       c.Text,
			FontSize:   c.FontSize,
			Steps:      c.Steps,
			TextWidth:  c.Measured.Width,
			TextHeight: c.Measured.Height,
			BandY:      c.Layout.Band.Y,
			BandHeight: c.Layout.Band.Height,
			Degenerate: c.Layout.Degenerate,
		})
	}

	return b.Build()
}

// batchSummary lists every batch job in input order.
func batchSummary(result orchestrator.BatchResult, cfg config.Config) *summarizer.Summary {
	b := summarizer.NewBuilder()
	if len(result.Items) > 0 {
		b.WithSettings(settings(result.Items[0].Config, cfg))
	} else {
		b.WithSettings(settings(orchestrator.Config{Backend: cfg.Backend}, cfg))
	}

	for _, item := range result.Items {
		e := summarizer.BatchEntry{
			Input:    item.Config.InputPath,
			Output:   item.Config.OutputPath,
			Captions: len(item.Result.Captions),
			FileSize: int64(item.Result.OutputBytes),
			Duration: item.Result.TotalTime,
		}
		if item.Err != nil {
			e.Error = item.Err.Error()
		}
		b.AddBatchEntry(e)
	}

	return b.Build()
}

func settings(orchConfig orchestrator.Config, cfg config.Config) summarizer.Settings {
	return summarizer.Settings{
		Backend:           orchConfig.Backend,
		TextColor:         orchConfig.Style.TextColor.Hex(),
		BackgroundColor:   orchConfig.Style.BackgroundColor.Hex(),
		BackgroundOpacity: orchConfig.Style.BackgroundAlpha,
		Outline:           orchConfig.Style.WithOutline,
		MinFontSize:       cfg.MinFontSize,
		MaxFontSize:       cfg.MaxFontSize,
		Padding:           cfg.Padding,
	}
}
