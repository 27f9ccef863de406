package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"call-scripter/internal/app"
	"call-scripter/internal/app/api/provider"
	"call-scripter/internal/config"
)

var (
	outputDir    string
	parallel     int
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Directory for <recording>.txt transcripts; print to stdout when empty")
	Cmd.Flags().IntVarP(&parallel, "parallel", "j", 2, "Number of recordings transcribed at once")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "Force the progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <recording>...",
	Short: "Transcribe local call recordings with the configured provider",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")

		cfg, keys, err := config.InitializeConfig(configFile)
		if err != nil {
			return err
		}
		p, err := app.InitializeTranscriber(cfg, keys)
		if err != nil {
			return err
		}

		pm := NewProgressManager(ProgressConfig{
			Enabled: outputDir != "" && ShouldShowProgress(showProgress),
			Writer:  cmd.ErrOrStderr(),
		})

		results := Batch(cmd.Context(), p, args, parallel, pm)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
				continue
			}
			if err := writeTranscript(cmd.OutOrStdout(), r, outputDir); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d recordings failed", failed, len(results))
		}
		return nil
	},
}

// Result is the outcome of transcribing one recording
type Result struct {
	Path string
	Text string
	Err  error
}

// Batch transcribes paths with at most parallel concurrent provider calls.
// Results keep the order of paths.
func Batch(ctx context.Context, p provider.TranscriptionProvider, paths []string, parallel int, pm *ProgressManager) []Result {
	if ctx == nil {
		ctx = context.Background()
	}
	if parallel < 1 {
		parallel = 1
	}

	bar := pm.CreateBar(len(paths), "Transcribing")
	results := make([]Result, len(paths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer bar.Increment()

			sem <- struct{}{}
			resp, err := provider.TranscribeFile(ctx, p, path, "")
			<-sem

			results[i] = Result{Path: path, Err: err}
			if err == nil {
				results[i].Text = resp.Text
			}
		}(i, path)
	}
	wg.Wait()
	pm.Wait()

	return results
}

func writeTranscript(stdout io.Writer, r Result, dir string) error {
	if dir == "" {
		_, err := fmt.Fprintf(stdout, "==> %s <==\n%s\n", r.Path, r.Text)
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
	target := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(target, []byte(r.Text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
