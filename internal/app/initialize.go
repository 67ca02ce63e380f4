package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Long: `Create the SQLite database and its tables: registrations plus the
derived growth_metrics and market_share tables. Safe to run repeatedly.`,
	RunE: runInit,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return err
	}

	path, _ := getDBPath()
	fmt.Printf("Database initialized at %s\n", path)
	return nil
}
