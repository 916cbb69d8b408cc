package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/api"
	"github.com/officehub-dev/officehub/internal/cli/guard"
)

// NewLeaveCmd creates the leave command group
func NewLeaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Submit and track leave applications",
	}

	cmd.AddCommand(newLeaveAddCmd())
	cmd.AddCommand(newLeaveTypesCmd())
	cmd.AddCommand(newLeaveApprovalsCmd())

	return cmd
}

func newLeaveAddCmd() *cobra.Command {
	var serverAlias string
	var req api.AddLeaveRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a leave application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaveAdd(serverAlias, req)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")
	cmd.Flags().Int64Var(&req.LeaveTypeID, "type", 0, "Leave type id (see 'officehub leave types')")
	cmd.Flags().StringVar(&req.StartTime, "from", "", "Start time (e.g. 2026-09-01T09:00:00Z)")
	cmd.Flags().StringVar(&req.EndTime, "to", "", "End time (e.g. 2026-09-03T18:00:00Z)")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "Reason for the leave")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runLeaveAdd(serverAlias string, req api.AddLeaveRequest) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenLeave); err != nil {
		return err
	}

	result, err := client.AddLeave(req)
	if err != nil {
		return fmt.Errorf("failed to submit leave application: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	fmt.Println("✓ Leave application submitted.")
	fmt.Printf("  From: %s\n", req.StartTime)
	fmt.Printf("  To:   %s\n", req.EndTime)
	return nil
}

func newLeaveTypesCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the available leave types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaveTypes(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runLeaveTypes(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenLeave); err != nil {
		return err
	}

	result, err := client.LeaveTypes()
	if err != nil {
		return fmt.Errorf("failed to fetch leave types: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Println("No leave types configured.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "──\t────")
	for _, t := range result.Data {
		fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Name)
	}
	w.Flush()
	return nil
}

func newLeaveApprovalsCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "List your leave applications and their review status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaveApprovals(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runLeaveApprovals(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenLeave); err != nil {
		return err
	}

	result, err := client.LeaveApprovals()
	if err != nil {
		return fmt.Errorf("failed to fetch leave approvals: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Println("No leave applications found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tFROM\tTO\tSTATUS\tREASON")
	fmt.Fprintln(w, "──\t────\t────\t──\t──────\t──────")
	for _, a := range result.Data {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.LeaveTypeName, a.StartTime, a.EndTime, approvalStatus(a.Status), a.Reason)
	}
	w.Flush()
	return nil
}

func approvalStatus(status int) string {
	switch status {
	case 1:
		return "approved"
	case 2:
		return "rejected"
	default:
		return "pending"
	}
}
