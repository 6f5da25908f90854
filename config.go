package highlight

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EngineConfig is the top-level, TOML-loaded configuration for an index: the
// teacher's scattered AnalyzerConfig/BM25 defaults, plus the highlighter's
// own format defaults, collected into one document so a deployment carries
// a single config file.
type EngineConfig struct {
	Analyzer  AnalyzerSettings  `toml:"analyzer"`
	BM25      BM25Settings      `toml:"bm25"`
	Highlight HighlightSettings `toml:"highlight"`
}

// AnalyzerSettings mirrors the teacher's AnalyzerConfig fields, renamed to
// TOML-friendly keys.
type AnalyzerSettings struct {
	MinTokenLength  int    `toml:"min_token_length"`
	EnableStemming  bool   `toml:"enable_stemming"`
	EnableStopwords bool   `toml:"enable_stopwords"`
	Locale          string `toml:"locale"`
}

// BM25Settings mirrors the teacher's DefaultBM25Parameters.
type BM25Settings struct {
	K1 float64 `toml:"k1"`
	B  float64 `toml:"b"`
}

// HighlightSettings are FormatOptions/Delimiters' config-file defaults.
type HighlightSettings struct {
	Highlight       bool   `toml:"highlight"`
	CropWords       int    `toml:"crop_words"`
	HighlightPrefix string `toml:"highlight_prefix"`
	HighlightSuffix string `toml:"highlight_suffix"`
	CropMarker      string `toml:"crop_marker"`
}

// DefaultEngineConfig mirrors the teacher's DefaultConfig/DefaultBM25Parameters,
// plus spec.md's delimiter defaults (<em>/</em>, ellipsis).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Analyzer: AnalyzerSettings{
			MinTokenLength:  2,
			EnableStemming:  true,
			EnableStopwords: true,
			Locale:          "english",
		},
		BM25: BM25Settings{K1: 1.5, B: 0.75},
		Highlight: HighlightSettings{
			Highlight:       true,
			CropWords:       0,
			HighlightPrefix: "<em>",
			HighlightSuffix: "</em>",
			CropMarker:      "…",
		},
	}
}

// LoadEngineConfig reads a TOML config file, falling back to
// DefaultEngineConfig for anything the file leaves unset.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// TokenizerConfig derives the tokenizer's Config from the loaded settings.
func (c EngineConfig) TokenizerConfig() Config {
	locale := LocaleEnglish
	if c.Analyzer.Locale != "english" && c.Analyzer.Locale != "" {
		locale = LocaleSegmented
	}

	return Config{
		MinTokenLength:  c.Analyzer.MinTokenLength,
		EnableStemming:  c.Analyzer.EnableStemming,
		EnableStopwords: c.Analyzer.EnableStopwords,
		Locale:          locale,
	}
}

// Delimiters derives highlight/crop delimiters from the loaded settings.
func (c EngineConfig) Delimiters() Delimiters {
	return Delimiters{
		HighlightPrefix: c.Highlight.HighlightPrefix,
		HighlightSuffix: c.Highlight.HighlightSuffix,
		CropMarker:      c.Highlight.CropMarker,
	}
}

// FormatOptions derives the default highlight/crop options from the loaded settings.
func (c EngineConfig) FormatOptions() FormatOptions {
	opts := FormatOptions{Highlight: c.Highlight.Highlight}
	if c.Highlight.CropWords > 0 {
		words := c.Highlight.CropWords
		opts.Crop = &words
	}
	return opts
}
