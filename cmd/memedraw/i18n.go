// Package main provides localization for the memedraw CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Version command
		"memedraw version %s": "memedraw バージョン %s",

		// Command results
		"Summary saved to %s":  "サマリーを %s に保存しました",
		"%d of %d jobs failed": "%d / %d 件のジョブが失敗しました",

		// Summary headings
		"Meme Summary":  "ミーム生成サマリー",
		"Batch Summary": "バッチ処理サマリー",
		"Image":         "画像",
		"Captions":      "キャプション",
		"Settings":      "設定",
		"Timing":        "処理時間",
		"Generated at":  "生成日時",

		// Summary tables
		"Item":          "項目",
		"Value":         "値",
		"Input":         "入力",
		"Input Format":  "入力形式",
		"Size":          "サイズ",
		"Output":        "出力",
		"Output Format": "出力形式",
		"File Size":     "ファイルサイズ",
		"Stage":         "ステージ",
		"Duration":      "所要時間",
		"Result":        "結果",

		// Captions
		"No captions drawn": "描画されたキャプションはありません",
		"Placement":         "位置",
		"Text":              "テキスト",
		"Font Size":         "フォントサイズ",
		"Text Box":          "テキスト領域",
		"Band":              "帯",
		"overflows image":   "画像からはみ出し",
		"steps":             "ステップ",
		"top":               "上",
		"bottom":            "下",

		// Settings
		"Renderer":        "レンダラー",
		"Text Color":      "文字色",
		"Background":      "背景",
		"Outline":         "縁取り",
		"Font Size Range": "フォントサイズ範囲",
		"Padding":         "余白",
		"Yes":             "はい",
		"No":              "いいえ",

		// Timing
		"Decode": "デコード",
		"Draw":   "描画",
		"Encode": "エンコード",
		"Total":  "合計",

		// Batch
		"Succeeded": "成功",
		"Failed":    "失敗",
	})
}
