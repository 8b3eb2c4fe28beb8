package cmd

import (
	"fmt"
	"log"

	"github.com/adisakb/e-sarabun/internal/storage"
	"github.com/adisakb/e-sarabun/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with sample data",
	Long:  `Seed the store with sample registry data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Logging.Env)
		lg := logger.LoggerWrapper()

		db, err := storage.Open(cfg.Storage)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}

		kv := storage.NewGormKV(db)

		if clearData {
			if err := kv.Clear(); err != nil {
				log.Fatalf("failed to clear existing data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		// NewStore falls back to seed data for every missing key; Flush
		// persists whatever was loaded or seeded.
		store := storage.NewStore(kv, lg)
		if err := store.Flush(); err != nil {
			log.Fatalf("failed to persist seed data: %v", err)
		}

		fmt.Printf("Seeded %d documents, %d users, %d categories\n",
			len(store.Documents()), len(store.Users()), len(store.Categories()))
	},
}
