package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MediaPlaceholder != "<Media omitted>" {
		t.Errorf("MediaPlaceholder = %q, want <Media omitted>", cfg.MediaPlaceholder)
	}
	if cfg.SentimentThreshold != 0.05 {
		t.Errorf("SentimentThreshold = %v, want 0.05", cfg.SentimentThreshold)
	}
	if cfg.TopWords != 20 {
		t.Errorf("TopWords = %d, want 20", cfg.TopWords)
	}
	if cfg.TopSpeakers != 5 {
		t.Errorf("TopSpeakers = %d, want 5", cfg.TopSpeakers)
	}
	if filepath.Base(cfg.DBPath) != "chatlens.db" {
		t.Errorf("DBPath = %q, want default chatlens.db", cfg.DBPath)
	}
	if len(cfg.ServicePhrases) != 0 {
		t.Errorf("ServicePhrases = %v, want empty", cfg.ServicePhrases)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chatlens")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
db_path = "~/chats/custom.db"
media_placeholder = "<media omitted>"
service_phrases = ["entrou usando o link"]
sentiment_threshold = 0.1
top_words = 10
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, "chats", "custom.db"); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q (with ~ expanded)", cfg.DBPath, want)
	}
	if cfg.MediaPlaceholder != "<media omitted>" {
		t.Errorf("MediaPlaceholder = %q, want override", cfg.MediaPlaceholder)
	}
	if len(cfg.ServicePhrases) != 1 || cfg.ServicePhrases[0] != "entrou usando o link" {
		t.Errorf("ServicePhrases = %v, want one custom phrase", cfg.ServicePhrases)
	}
	if cfg.SentimentThreshold != 0.1 {
		t.Errorf("SentimentThreshold = %v, want 0.1", cfg.SentimentThreshold)
	}
	if cfg.TopWords != 10 {
		t.Errorf("TopWords = %d, want 10", cfg.TopWords)
	}
	// keys absent from the file keep their defaults
	if cfg.TopSpeakers != 5 {
		t.Errorf("TopSpeakers = %d, want default 5", cfg.TopSpeakers)
	}
}
