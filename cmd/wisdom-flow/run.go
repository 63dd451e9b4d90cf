package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/internal/transcript"
)

const urlPrompt = "Please provide a YouTube URL: "

var runFlags struct {
	url  string
	docx bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process one video: transcript, wisdom and project draft",
	Long:  `Fetch the transcript of a YouTube video, extract wisdom from it chunk by chunk and draft a coding project. Without --url the command prompts for a URL; a blank answer processes the default video.`,
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFlags.url, "url", "u", "", "YouTube URL to process (skips the prompt)")
	cmd.Flags().BoolVar(&runFlags.docx, "docx", false, "Also write wisdom.docx")
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cmd.OutOrStdout(), runFlags.docx)
	if err != nil {
		return err
	}

	answer := runFlags.url
	if !cmd.Flags().Changed("url") {
		answer, err = promptURL(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			a.logger.Error(ctx, "Error getting YouTube URL: %v", err)
			a.printer.Errorf("Unable to get YouTube URL")
			return nil
		}
	}

	videoURL, err := transcript.ResolveURL(answer, config.DefaultVideoURL)
	if err != nil {
		a.logger.Error(ctx, "Error getting YouTube URL: %v", err)
		a.printer.Errorf("Unable to get YouTube URL")
		return nil
	}

	// Step failures are reported by the pipeline itself and do not change the exit code.
	_, _ = a.pipeline.Run(ctx, videoURL)
	return nil
}

// promptURL asks for a URL and returns the answer. EOF counts as a blank answer.
func promptURL(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, urlPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

