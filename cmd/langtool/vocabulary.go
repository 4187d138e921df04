package main

import (
	"fmt"

	"github.com/AaroKoinsaari/language-learning-tool/internal/config"
	"github.com/AaroKoinsaari/language-learning-tool/internal/vocabulary"
	"github.com/spf13/cobra"
)

func newVocabularyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "vocabulary",
		Short: "Commands for inspecting the vocabulary file",
	}

	command.AddCommand(newVocabularyListCommand())
	command.AddCommand(newVocabularyValidateCommand())

	return command
}

func newVocabularyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the word pairs in the vocabulary set",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadVocabulary()
			if err != nil {
				return err
			}

			for _, entry := range set.Entries() {
				fmt.Printf("%-24s %s\n", entry.Term, entry.Translation)
			}
			return nil
		},
	}
}

func newVocabularyValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the vocabulary file loads cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadVocabulary()
			if err != nil {
				return err
			}

			fmt.Printf("OK: %d entries\n", set.Len())
			return nil
		},
	}
}

func loadVocabulary() (vocabulary.Set, error) {
	cfg, err := loadConfig()
	if err != nil {
		return vocabulary.Set{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return vocabulary.Set{}, err
	}
	return vocabulary.NewFileSource(cfg.Vocabulary.File).Load()
}
