package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/api/v1/services"
	"call-scripter/internal/app"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/config"
)

var (
	transcriptFile string
	scriptType     string
	summary        bool
)

func init() {
	Cmd.Flags().StringVarP(&transcriptFile, "transcript", "t", "", "Transcript file, \"-\" reads stdin")
	Cmd.Flags().StringVar(&scriptType, "type", "", "Script type: settings, customer_service or closing (default closing)")
	Cmd.Flags().BoolVar(&summary, "summary", false, "Produce the reformatted call summary instead of a script")

	_ = Cmd.MarkFlagRequired("transcript")
}

// Cmd represents the script command
var Cmd = &cobra.Command{
	Use:   "script",
	Short: "Generate a call script from a transcript file",
	Long: `Generate a call script from a transcript file

- The script is streamed to stdout as the model produces it
- --summary returns the reformatted call summary in one piece`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")

		cfg, keys, err := config.InitializeConfig(configFile)
		if err != nil {
			return err
		}
		generator, err := app.InitializeGenerator(cfg, keys)
		if err != nil {
			return err
		}

		transcript, err := readTranscript(cmd.InOrStdin(), transcriptFile)
		if err != nil {
			return err
		}

		svc := services.NewScriptService(generator, metrics.New(), zap.NewNop())
		return Run(cmd.Context(), svc, cmd.OutOrStdout(), transcript, scriptType, summary)
	},
}

// Run writes either the summary or the streamed script for transcript to out
func Run(ctx context.Context, svc services.ScriptService, out io.Writer, transcript, scriptType string, summary bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if summary {
		text, err := svc.Summary(ctx, &dto.ScriptRequest{Transcript: transcript})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}

	err := svc.StreamScript(ctx, &dto.ScriptV2Request{Transcript: transcript, Type: scriptType}, func(chunk string) error {
		_, err := io.WriteString(out, chunk)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func readTranscript(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}

	transcript := strings.TrimSpace(string(data))
	if transcript == "" {
		return "", fmt.Errorf("transcript is empty")
	}
	return transcript, nil
}
