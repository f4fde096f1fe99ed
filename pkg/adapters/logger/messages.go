package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Drawing captions on %s":          "%s にキャプションを描画中",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Starting pipeline":               "パイプラインを開始します",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Decode / encode
		"Decoded %s image: %dx%d":     "%s 画像をデコードしました: %dx%d",
		"Encoding %s with quality %d": "%s を品質 %d でエンコード中",
		"Encoded %d bytes":            "%d バイトにエンコードしました",
		"Using %s renderer":           "%s レンダラーを使用します",

		// Caption stage
		"Caption %s: %.2fpx, band %.0fx%.0f at y=%.1f":       "キャプション %s: %.2fpx, 帯 %.0fx%.0f (y=%.1f)",
		"Skipping empty %s caption":                          "空の %s キャプションをスキップします",
		"Fitted %q at %.2fpx in %d steps (width %.1f of %d)": "%q を %.2fpx に調整 (%d ステップ, 幅 %.1f / %d)",

		// Batch
		"Running %d jobs with %d workers":   "%d 件のジョブを %d ワーカーで実行中",
		"Job %d/%d done: %s":                "ジョブ %d/%d 完了: %s",
		"Batch completed: %d ok, %d failed": "バッチ完了: 成功 %d 件, 失敗 %d 件",

		// Warnings
		"%s band (%.0fpx) is taller than the image (%dpx); captions may overlap": "%s の帯 (%.0fpx) が画像の高さ (%dpx) を超えています。キャプションが重なる可能性があります",

		// Debug output
		"Failed to save debug captions for %s: %s": "%s のデバッグ用キャプションの保存に失敗しました: %s",
		"Failed to save debug canvas for %s: %s":   "%s のデバッグ用キャンバスの保存に失敗しました: %s",

		// Errors
		"Failed to read input: %s":    "入力の読み込みに失敗しました: %s",
		"Failed to decode image: %s":  "画像のデコードに失敗しました: %s",
		"Failed to draw captions: %s": "キャプションの描画に失敗しました: %s",
		"Failed to encode image: %s":  "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
		"Job %d failed: %s":           "ジョブ %d が失敗しました: %s",
	})
}
