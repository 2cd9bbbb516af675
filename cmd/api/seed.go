package main

import (
	"time"

	"github.com/blaisecz/mood-journal/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample users and history",
	Long: `Create four sample users in different timezones with forty days of mood
check-ins, journal entries and weekly BMI records. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDatabase(cfg, log)
		if err != nil {
			return err
		}
		return seed.Run(cmd.Context(), db, time.Now().UTC(), log)
	},
}
