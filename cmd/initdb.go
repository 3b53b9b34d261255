/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/inkwell-blog/inkwell/config"
	"github.com/inkwell-blog/inkwell/internal/db"
	"github.com/spf13/cobra"
)

// initDBCmd destructively recreates the schema. Running it against a live
// database discards all existing data; that is the point of the command,
// not an accident to guard against.
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Recreate the database schema, discarding existing data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer func() {
			_ = conn.Close()
		}()

		if err := db.InitSchema(cmd.Context(), conn); err != nil {
			return fmt.Errorf("init schema failed: %w", err)
		}

		fmt.Println("Initialized the database.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
