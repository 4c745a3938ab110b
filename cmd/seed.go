package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/DigitalBullGO/indicatorems/internal/config"
	"github.com/DigitalBullGO/indicatorems/internal/database"
	"github.com/DigitalBullGO/indicatorems/internal/seed"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in EMS datasets into the database",
	Long: `Load the embedded master datasets (suppliers, components, sample BOM,
customers, projects and SAP table descriptors) into the database.
Existing rows with the same primary key are overwritten, so the
command is safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		defer func() {
			sqlDB, _ := db.DB()
			if sqlDB != nil {
				sqlDB.Close()
			}
		}()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		log.Println("Seeding datasets...")
		counts, err := seed.Apply(db)
		if err != nil {
			return fmt.Errorf("failed to seed datasets: %w", err)
		}
		for table, n := range counts {
			log.Printf("  %s: %d rows", table, n)
		}

		log.Println("Seeding completed successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("config", "", "Config file path (default: search in current directory, ./config, or $HOME/.indicatorems)")
}
