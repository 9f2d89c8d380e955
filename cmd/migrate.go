package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"learnapp/pkg/category"
	"learnapp/pkg/store"
)

func init() {
	CategoryCommand.AddCommand(&CategoryAddCommand)
	RootCmd.AddCommand(&MigrateCommand)
	RootCmd.AddCommand(&CategoryCommand)
}

var MigrateCommand = cobra.Command{
	Use:   "migrate",
	Short: "Create the tables and the default categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Migrate(ctx, db, cfg["DB_DRIVER"]); err != nil {
			return err
		}
		log.Println("done")
		return nil
	},
}

var CategoryCommand = cobra.Command{
	Use:   "category",
	Short: "Manage post categories",
}

var CategoryAddCommand = cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		c, err := category.NewCategoryRepo(db).Add(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("category %q added with id %d\n", c.Name, c.Id)
		return nil
	},
}
