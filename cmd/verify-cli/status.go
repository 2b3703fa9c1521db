package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/chainsafe/social-verifier/pkg/verification"
	"github.com/chainsafe/social-verifier/pkg/wizard"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <wallet>",
		Short: "Show the stored verification of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := s.client.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var v any = res.Record
			if !res.Verified {
				v = verification.NotVerified{Verified: false, Message: res.Message}
			}
			return s.print(v, func(w io.Writer) { printStatus(w, res) })
		},
	}
}

func printStatus(w io.Writer, res *wizard.StatusResult) {
	if !res.Verified {
		fmt.Fprintln(w, res.Message)
		return
	}
	printRecord(w, res.Record)
}

func printRecord(w io.Writer, rec *verification.Record) {
	wallet := rec.OriginalWalletAddress
	if wallet == "" {
		wallet = rec.WalletAddress
	}
	fmt.Fprintf(w, "Wallet Address:    %s\n", wallet)
	fmt.Fprintf(w, "Blockchain:        %s\n", rec.BlockchainType)
	fmt.Fprintf(w, "Twitter Account:   @%s\n", rec.TwitterHandle)
	fmt.Fprintf(w, "Method:            %s\n", rec.VerificationMethod)
	fmt.Fprintf(w, "Request ID:        %s\n", rec.FlareVerification.RequestID)
	fmt.Fprintf(w, "Verification Time: %s\n", rec.VerifiedAt.Local().Format(time.RFC1123))

	if b := rec.BridgeInfo; b != nil {
		fmt.Fprintln(w, "Cross-Chain Bridge:")
		fmt.Fprintf(w, "  Bridge ID:  %s\n", b.BridgeID)
		fmt.Fprintf(w, "  Route:      %s -> %s\n", b.SourceChain, b.DestinationChain)
		fmt.Fprintf(w, "  Gas Amount: %s C2FLR\n", b.GasAmount)
		fmt.Fprintf(w, "  Status:     %s\n", b.BridgeStatus)
	}
}
