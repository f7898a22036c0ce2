package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/analyze"
	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/store"
	"github.com/chatlens/chatlens/internal/transcript"
)

func analyzeCmd() *cobra.Command {
	var speaker, chatID string
	var basic, timeline, activity, words, emoji, sentiment bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a transcript file or a stored chat",
		Long: `Runs the normalization pipeline on an exported transcript and prints the
selected analysis sections. With no section flags, all sections are shown.
Use --chat to analyze a previously imported chat instead of a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var records []transcript.Record
			switch {
			case chatID != "":
				db, err := store.OpenDB(cfg.DBPath)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				defer db.Close()
				records, err = db.LoadRecords(chatID)
				if err != nil {
					return fmt.Errorf("load chat: %w", err)
				}
			case len(args) == 1:
				records, err = processFile(cfg, args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("provide a transcript file or --chat <id>")
			}

			if len(records) == 0 {
				fmt.Fprintln(os.Stderr, "No valid chat data found.")
				return nil
			}

			engine := newEngine(cfg, records)
			all := !basic && !timeline && !activity && !words && !emoji && !sentiment

			sections := []struct {
				name    string
				enabled bool
				run     func()
			}{
				{"basic", basic || all, func() { printBasic(engine, speaker) }},
				{"speakers", (basic || all) && speaker == "", func() { printBusiest(engine) }},
				{"timeline", timeline || all, func() { printTimeline(engine, speaker) }},
				{"activity", activity || all, func() { printActivity(engine, speaker) }},
				{"words", words || all, func() { printWords(engine, speaker) }},
				{"emoji", emoji || all, func() { printEmoji(engine, speaker) }},
				{"sentiment", sentiment || all, func() { printSentiment(engine, speaker) }},
			}
			for _, s := range sections {
				if !s.enabled {
					continue
				}
				runSection(s.name, s.run)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&speaker, "speaker", "", "Narrow the analysis to one speaker (default: all speakers)")
	cmd.Flags().StringVar(&chatID, "chat", "", "Analyze a stored chat by ID instead of a file")
	cmd.Flags().BoolVar(&basic, "basic", false, "Basic statistics")
	cmd.Flags().BoolVar(&timeline, "timeline", false, "Monthly and daily timelines")
	cmd.Flags().BoolVar(&activity, "activity", false, "Weekday/month activity maps and heatmap")
	cmd.Flags().BoolVar(&words, "words", false, "Most common words")
	cmd.Flags().BoolVar(&emoji, "emoji", false, "Emoji frequency")
	cmd.Flags().BoolVar(&sentiment, "sentiment", false, "Sentiment distribution")

	return cmd
}

// runSection isolates one analysis section: a failure in it is logged
// and must not take down the remaining sections.
func runSection(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("section", name).Msg("analysis section failed")
		}
	}()
	fn()
}

func processFile(cfg *config.Config, path string) ([]transcript.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	extractor := transcript.NewExtractor(cfg.ServicePhrases...)
	normalizer := transcript.NewNormalizer(analyze.NewClassifier(cfg.SentimentThreshold))
	records := normalizer.Normalize(extractor.Extract(string(data)))
	log.Info().Int("records", len(records)).Msg("transcript processed")
	return records, nil
}

func newEngine(cfg *config.Config, records []transcript.Record) *analyze.Engine {
	opts := []analyze.Option{
		analyze.WithMediaPlaceholder(cfg.MediaPlaceholder),
		analyze.WithThreshold(cfg.SentimentThreshold),
		analyze.WithTopWords(cfg.TopWords),
		analyze.WithTopSpeakers(cfg.TopSpeakers),
	}
	if cfg.StopwordsFile != "" {
		data, err := os.ReadFile(cfg.StopwordsFile)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.StopwordsFile).Msg("stopwords file unreadable, using defaults")
		} else {
			opts = append(opts, analyze.WithStopwords(analyze.ParseStopwords(string(data))))
		}
	}
	return analyze.NewEngine(records, opts...)
}
