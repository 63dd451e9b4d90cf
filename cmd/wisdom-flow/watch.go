package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/wisdom-flow/internal/pipeline"
	"github.com/nguyentantai21042004/wisdom-flow/internal/transcript"
	"github.com/nguyentantai21042004/wisdom-flow/internal/watcher"
)

var watchFlags struct {
	inbox string
	docx  bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process every URL file dropped into the inbox",
	Long:  `Monitor the inbox directory (default ~/output/inbox) and run the full flow for each new .url or .txt file, one video at a time. Each run overwrites the files in ~/output.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cmd.OutOrStdout(), watchFlags.docx)
		if err != nil {
			return err
		}

		inbox := a.cfg.Watch.Inbox
		if watchFlags.inbox != "" {
			inbox = watchFlags.inbox
		}

		w, err := watcher.New(inbox, handleURL(a.pipeline), a.logger)
		if err != nil {
			return err
		}
		defer w.Stop()

		a.logger.Info(ctx, "Press Ctrl+C to stop")
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// handleURL validates an inbox URL and runs the pipeline for it.
func handleURL(p pipeline.Pipeline) watcher.URLHandler {
	return func(ctx context.Context, videoURL string) error {
		if _, err := transcript.ExtractVideoID(videoURL); err != nil {
			return err
		}
		_, err := p.Run(ctx, videoURL)
		return err
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchFlags.inbox, "inbox", "", "Inbox directory (overrides config)")
	watchCmd.Flags().BoolVar(&watchFlags.docx, "docx", false, "Also write wisdom.docx for each run")
	rootCmd.AddCommand(watchCmd)
}
