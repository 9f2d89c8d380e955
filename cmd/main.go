package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"learnapp/pkg/logger"
	"learnapp/pkg/store"
)

var (
	// flags
	envFile string

	cfg EnvConfig
)

func init() {
	rand.Seed(time.Now().UnixNano())

	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with the configuration")
}

var RootCmd = cobra.Command{
	Use:   "learnapp",
	Short: "Share posts, vote on them and keep collections of what you saved",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = readConfig(envFile)
		logger.Run(cfg["LOG_LEVEL"])
	},
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func openDB(ctx context.Context) (*sql.DB, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return store.Open(dbCtx, cfg["DB_DRIVER"], cfg["DATABASE_URL"])
}
