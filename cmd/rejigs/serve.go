package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/rejigs/pkg/serve"
	"github.com/spf13/cobra"
)

var servePatternsPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming validation server",
	Long: `Run Rejigs as a long-lived streaming server that accepts check and
identify requests via stdin and writes results to stdout using NDJSON.

The process compiles its definitions once at startup and processes requests
until stdin closes, a close request arrives or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePatternsPath, "file", "", "Path to a custom pattern catalog file or directory")
}

func runServe(cmd *cobra.Command, args []string) error {
	core, err := newCore(cmd, servePatternsPath)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := serve.NewServer(core, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
