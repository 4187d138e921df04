package main

import (
	"context"
	"fmt"

	"github.com/AaroKoinsaari/language-learning-tool/internal/cli"
	"github.com/AaroKoinsaari/language-learning-tool/internal/config"
	"github.com/AaroKoinsaari/language-learning-tool/internal/quiz"
	"github.com/AaroKoinsaari/language-learning-tool/internal/vocabulary"
	"github.com/spf13/cobra"
)

const welcomeBanner = `Welcome to the Simple Language Learning Game!
---------------------------------------------
This console program will test your knowledge of word translations.
You'll be given English words, and your task is to translate them into French.

Press Enter to submit an answer. If you want to exit at any time,
write 'q' and press Enter.

Bonne chance!
`

func newQuizCommand() *cobra.Command {
	var vocabularyFile string
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Start a translation quiz over the vocabulary set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if vocabularyFile != "" {
				cfg.Vocabulary.File = vocabularyFile
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			quizCLI, err := cli.NewQuizCLI(
				vocabulary.NewFileSource(cfg.Vocabulary.File),
				quiz.Policy{
					CaseSensitive:   cfg.Quiz.CaseSensitive,
					AccentSensitive: cfg.Quiz.AccentSensitive,
				},
				nil,
			)
			if err != nil {
				return err
			}

			fmt.Print(welcomeBanner, "\n")
			fmt.Printf("Starting a session with %d words\n\n", quizCLI.QuestionCount())

			result, err := quizCLI.Run(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	command.Flags().StringVar(&vocabularyFile, "vocabulary", "", "vocabulary file path (overrides the configuration)")

	return command
}
