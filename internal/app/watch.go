package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vahanalytics/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <csv>",
	Short: "Keep the database in sync with a CSV file",
	Long: `Watch a registration CSV file and re-ingest it whenever it changes,
rebuilding the derived analytics tables after each load. Runs until
interrupted with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return err
	}

	w, err := watcher.New(st, args[0], newLogger())
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("Watching %s — press Ctrl-C to stop\n", args[0])

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping...")
	return w.Stop()
}
