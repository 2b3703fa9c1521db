package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/ethereum"
	"github.com/chainsafe/social-verifier/pkg/wizard"
)

type wizardFlags struct {
	method    string
	wallet    string
	handle    string
	tweetURL  string
	testMode  string
	walletRPC string
	pacing    bool
}

func wizardCmd() *cobra.Command {
	var f wizardFlags
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive Twitter verification wizard",
		Long: `Walks through choosing a method, filling in details and processing.
Values not given as flags are prompted for on stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if !cmd.Flags().Changed("test-mode") {
				f.testMode = s.cfg.TestMode
			}
			if !cmd.Flags().Changed("wallet-rpc") {
				f.walletRPC = s.cfg.WalletRPCURL
			}
			return runWizard(cmd.Context(), s, cmd.InOrStdin(), &f)
		},
	}

	cmd.Flags().StringVar(&f.method, "method", "", "Verification method: tweet|bio")
	cmd.Flags().StringVar(&f.wallet, "wallet", "", "Wallet address to verify")
	cmd.Flags().StringVar(&f.handle, "handle", "", "Twitter handle")
	cmd.Flags().StringVar(&f.tweetURL, "tweet-url", "", "URL of the verification tweet")
	cmd.Flags().StringVar(&f.testMode, "test-mode", string(wizard.TestModeSuccess), "Test mode: success|random")
	cmd.Flags().StringVar(&f.walletRPC, "wallet-rpc", "", "EIP-1193 wallet RPC endpoint used to connect the wallet")
	cmd.Flags().BoolVar(&f.pacing, "pacing", true, "Pause between processing substeps")
	return cmd
}

var markLabels = []string{
	"Submitting verification request",
	"FDC processing Twitter data",
	"Generating cryptographic proof",
	"Verification complete",
}

// progressPrinter reports step changes and newly set substeps.
func progressPrinter(out io.Writer) func(wizard.Snapshot) {
	var last wizard.Snapshot
	return func(snap wizard.Snapshot) {
		if snap.Step != last.Step && snap.Step == wizard.StepProcessing {
			fmt.Fprintln(out, "\nSubmitting to Flare Data Connector...")
		}
		prev := []bool{last.Marks.Submit, last.Marks.Attest, last.Marks.Prove, last.Marks.Complete}
		cur := []bool{snap.Marks.Submit, snap.Marks.Attest, snap.Marks.Prove, snap.Marks.Complete}
		for i := range cur {
			if cur[i] && !prev[i] {
				fmt.Fprintf(out, "  ✓ %s\n", markLabels[i])
			}
		}
		last = snap
	}
}

func runWizard(ctx context.Context, s *session, in io.Reader, f *wizardFlags) error {
	p := &prompter{in: bufio.NewReader(in), out: s.errOut}

	opts := []wizard.Option{wizard.WithListener(progressPrinter(s.errOut))}
	if !f.pacing {
		opts = append(opts, wizard.WithSleeper(wizard.SleeperFunc(func(ctx context.Context, _ time.Duration) error {
			return ctx.Err()
		})))
	}
	w := wizard.New(s.client, opts...)
	w.SetTestMode(wizard.TestMode(f.testMode))

	for {
		failed, err := attempt(ctx, s, p, w, f)
		if err != nil {
			return err
		}
		if failed == nil {
			break
		}
		s.logger.Debug("Verification failed", zap.Error(failed))
		// without --method the wizard starts over from the method choice
		if f.method != "" {
			return fmt.Errorf("verification failed: %w", failed)
		}
		fmt.Fprintf(s.errOut, "✗ Verification failed: %s\n\nStarting over.\n\n", failed)
		w.Restart()
	}

	res := w.Result()
	return s.print(res, func(out io.Writer) {
		fmt.Fprintln(out, "\nSuccessfully verified!")
		if res.Record != nil {
			printRecord(out, res.Record)
		} else {
			fmt.Fprintf(out, "Wallet Address:    %s\n", res.WalletAddress)
			fmt.Fprintf(out, "Twitter Account:   @%s\n", res.TwitterHandle)
			fmt.Fprintf(out, "Request ID:        %s\n", res.RequestID)
			fmt.Fprintf(out, "Verification Time: %s\n", res.VerifiedAt.Local().Format(time.RFC1123))
		}
		fmt.Fprintf(out, "Explorer:          %s/tx/%s\n", strings.TrimRight(s.cfg.Flare.ExplorerURL, "/"), res.TxHash)
	})
}

// attempt runs one pass from method choice to processing. A processing
// failure that reset the wizard is returned as failed, not err.
func attempt(ctx context.Context, s *session, p *prompter, w *wizard.Wizard, f *wizardFlags) (failed, err error) {
	// Step 1
	method := f.method
	if method == "" {
		if method, err = p.ask("Verification method [tweet/bio]", string(wizard.MethodTweet)); err != nil {
			return nil, err
		}
	}
	if err := w.SelectMethod(wizard.Method(method)); err != nil {
		return nil, err
	}

	// Step 2
	if err := fillWallet(ctx, s, p, w, f); err != nil {
		return nil, err
	}
	if w.Method() == wizard.MethodTweet {
		fmt.Fprintf(s.errOut, "\nPost this tweet from your account:\n\n%s\n\n", w.TweetTemplate())
	} else {
		fmt.Fprintf(s.errOut, "\nAdd this code to your Twitter bio: %s\n\n", w.BioCode())
	}

	for {
		if err := fillDetails(p, w, f); err != nil {
			return nil, err
		}
		err := w.Start(ctx)
		if err == nil {
			return nil, nil
		}
		// validation errors keep the wizard on FillDetails
		if w.Step() == wizard.StepFillDetails && f.handle == "" && f.tweetURL == "" && !errors.Is(err, wizard.ErrInvalidWallet) {
			fmt.Fprintf(s.errOut, "✗ %s\n", err)
			w.SetTwitterHandle("")
			w.SetTweetURL("")
			continue
		}
		if w.Step() == wizard.StepChooseMethod {
			return err, nil
		}
		return nil, err
	}
}

func fillWallet(ctx context.Context, s *session, p *prompter, w *wizard.Wizard, f *wizardFlags) error {
	switch {
	case f.wallet != "":
		w.SetWallet(f.wallet)
		return nil
	case f.walletRPC != "":
		return connectWallet(ctx, s, w, f.walletRPC)
	}

	for {
		wallet, err := p.ask("Wallet address", "")
		if err != nil {
			return err
		}
		if address.Validate(strings.TrimSpace(wallet)) != nil {
			fmt.Fprintf(s.errOut, "✗ %s\n", wizard.ErrInvalidWallet)
			continue
		}
		w.SetWallet(wallet)
		return nil
	}
}

func connectWallet(ctx context.Context, s *session, w *wizard.Wizard, url string) error {
	provider, err := ethereum.DialWallet(ctx, url)
	if err != nil {
		return err
	}
	defer provider.Close()

	params := ethereum.FlareChainParams(&s.cfg.Flare)
	added, err := wizard.SwitchNetwork(ctx, provider, params)
	if err != nil {
		return fmt.Errorf("failed to switch to %s: %w", params.ChainName, err)
	}
	if added {
		fmt.Fprintf(s.errOut, "Added %s to the wallet\n", params.ChainName)
	}

	wallet, err := w.ConnectWallet(ctx, provider)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.errOut, "Wallet connected: %s\n", address.ShortAddress(wallet))
	return nil
}

func fillDetails(p *prompter, w *wizard.Wizard, f *wizardFlags) error {
	handle := f.handle
	if handle == "" {
		var err error
		if handle, err = p.ask("Twitter handle", ""); err != nil {
			return err
		}
	}
	w.SetTwitterHandle(handle)

	if w.Method() != wizard.MethodTweet {
		return nil
	}
	tweetURL := f.tweetURL
	if tweetURL == "" {
		var err error
		if tweetURL, err = p.ask("Tweet URL", ""); err != nil {
			return err
		}
	}
	w.SetTweetURL(tweetURL)
	return nil
}

// prompter reads one answer per line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s (%s): ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no answer for %q", label)
		}
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
