package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/chainsafe/social-verifier/pkg/agent"
)

func agentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Show the Flow ETF agent snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.client.Agent(cmd.Context())
			if err != nil {
				return err
			}
			return s.print(resp, func(w io.Writer) { printAgentStatus(w, resp) })
		},
	}

	cmd.AddCommand(agentSetCmd(), agentAuthorizeCmd())
	return cmd
}

func agentSetCmd() *cobra.Command {
	var agentAddr string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Simulate setting the vault agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgentAction(cmd, &agent.ActionRequest{Action: agent.ActionSetAgent, Agent: agentAddr})
		},
	}
	cmd.Flags().StringVar(&agentAddr, "agent", "", "Agent address")
	_ = cmd.MarkFlagRequired("agent")
	return cmd
}

func agentAuthorizeCmd() *cobra.Command {
	var (
		agentAddr  string
		authorized bool
	)
	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Simulate authorizing or revoking an agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgentAction(cmd, &agent.ActionRequest{
				Action:     agent.ActionAuthorize,
				Agent:      agentAddr,
				Authorized: authorized,
			})
		},
	}
	cmd.Flags().StringVar(&agentAddr, "agent", "", "Agent address")
	cmd.Flags().BoolVar(&authorized, "authorized", true, "Grant (true) or revoke (false) authorization")
	_ = cmd.MarkFlagRequired("agent")
	return cmd
}

func runAgentAction(cmd *cobra.Command, req *agent.ActionRequest) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.client.AgentAction(cmd.Context(), req)
	if err != nil {
		return err
	}
	return s.print(res, func(w io.Writer) {
		fmt.Fprintf(w, "Action:     %s\n", res.Action)
		fmt.Fprintf(w, "Agent:      %s\n", res.Agent)
		if res.Authorized != nil {
			fmt.Fprintf(w, "Authorized: %t\n", *res.Authorized)
		}
		fmt.Fprintf(w, "Tx Hash:    %s\n", res.TxHash)
		fmt.Fprintf(w, "Timestamp:  %s\n", res.Timestamp.Format(time.RFC3339))
	})
}

func printAgentStatus(w io.Writer, resp *agent.StatusResponse) {
	if !resp.Success {
		fmt.Fprintf(w, "Warning: %s, showing fallback data\n", resp.Error)
	}
	d := resp.Data
	if d == nil {
		return
	}
	fmt.Fprintf(w, "Agent:            %s\n", d.Address)
	fmt.Fprintf(w, "Authorized:       %t\n", d.IsAuthorized)
	fmt.Fprintf(w, "Balance:          %s\n", d.Balance)
	fmt.Fprintf(w, "Status:           %s\n", d.Status)
	fmt.Fprintf(w, "Total Operations: %d\n", d.TotalOperations)
	fmt.Fprintf(w, "Last Operation:   %s\n", d.LastOperation.Format(time.RFC3339))
	for _, op := range d.Operations {
		fmt.Fprintf(w, "  %s  %-8s %-10s %s\n", op.Timestamp.Format(time.RFC3339), op.Type, op.Amount, op.TxHash)
	}
}
