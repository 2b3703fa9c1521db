package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/config"
	"github.com/chainsafe/social-verifier/pkg/wizard"
)

const (
	flagConfig  = "config"
	flagAPIURL  = "api-url"
	flagOutput  = "output"
	flagVerbose = "verbose"

	outputText = "text"
	outputJSON = "json"
)

// NewRootCmd builds the verify-cli command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "verify-cli",
		Short:         "Verify a wallet against a Twitter account through Flare",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to client configuration file")
	rootCmd.PersistentFlags().String(flagAPIURL, "", "Verification API base URL (overrides config)")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputText, "Output format: text|json")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Log requests at debug level")

	rootCmd.AddCommand(
		wizardCmd(),
		statusCmd(),
		agentCmd(),
	)
	return rootCmd
}

// session bundles what every subcommand needs.
type session struct {
	cfg    *config.ClientConfig
	client *wizard.Client
	logger *zap.Logger
	out    io.Writer
	// errOut carries prompts and progress so out stays parseable.
	errOut io.Writer
	output string
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString(flagConfig)
	apiURL, _ := flags.GetString(flagAPIURL)
	output, _ := flags.GetString(flagOutput)
	verbose, _ := flags.GetBool(flagVerbose)

	if output != outputText && output != outputJSON {
		return nil, fmt.Errorf("invalid --output %q: want text or json", output)
	}

	cfg, err := config.LoadClient(cfgPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	logger, err := config.NewCLILogger(verbose)
	if err != nil {
		return nil, err
	}

	client := wizard.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
	logger.Debug("Using verification API",
		zap.String("api_url", cfg.APIURL),
		zap.String("session_id", client.SessionID()),
	)

	return &session{
		cfg:    cfg,
		client: client,
		logger: logger,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		output: output,
	}, nil
}

func (s *session) close() { _ = s.logger.Sync() }

// print writes v as indented JSON, or calls text for the text format.
func (s *session) print(v any, text func(w io.Writer)) error {
	if s.output == outputJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(s.out)
	return nil
}
