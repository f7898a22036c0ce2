package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DBPath             string   `toml:"db_path"`
	MediaPlaceholder   string   `toml:"media_placeholder"`
	StopwordsFile      string   `toml:"stopwords_file"`
	ServicePhrases     []string `toml:"service_phrases"`
	SentimentThreshold float64  `toml:"sentiment_threshold"`
	TopWords           int      `toml:"top_words"`
	TopSpeakers        int      `toml:"top_speakers"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:             filepath.Join(home, ".config", "chatlens", "chatlens.db"),
		MediaPlaceholder:   "<Media omitted>",
		SentimentThreshold: 0.05,
		TopWords:           20,
		TopSpeakers:        5,
	}

	cfgPath := filepath.Join(home, ".config", "chatlens", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.StopwordsFile = expandHome(cfg.StopwordsFile, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
