package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/api"
	"github.com/officehub-dev/officehub/internal/cli/guard"
)

// NewWorkersCmd creates the workers command group
func NewWorkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Manage the employee directory",
	}

	cmd.AddCommand(newWorkersListCmd())
	cmd.AddCommand(newWorkersUpdateCmd())
	cmd.AddCommand(newWorkersDeleteCmd())

	return cmd
}

func newWorkersListCmd() *cobra.Command {
	var serverAlias string
	var page, size int
	var username, position, status, since string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List employees page by page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkersList(serverAlias, page, size, username, position, status, since)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", 10, "Page size")
	cmd.Flags().StringVar(&username, "username", "", "Filter by username")
	cmd.Flags().StringVar(&position, "position", "", "Filter by position")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (1 active, 0 disabled)")
	cmd.Flags().StringVar(&since, "since", "", "Only employees created at or after this RFC3339 time")

	return cmd
}

func runWorkersList(serverAlias string, page, size int, username, position, status, since string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenEmployees); err != nil {
		return err
	}

	req := api.PageWorkersRequest{
		PageNum:   page,
		PageSize:  size,
		Username:  username,
		Position:  position,
		StartTime: since,
	}
	if status != "" {
		value, err := strconv.Atoi(status)
		if err != nil {
			return fmt.Errorf("invalid status %q (use 1 or 0)", status)
		}
		req.Status = &value
	}

	result, err := client.PageWorkers(req)
	if err != nil {
		return fmt.Errorf("failed to fetch employees: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	if len(result.Data.Rows) == 0 {
		fmt.Println("No employees found.")
		return nil
	}

	fmt.Printf("Employees (page %d, %d total):\n\n", page, result.Data.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE ID\tUSERNAME\tNAME\tPOSITION\tSTATUS")
	fmt.Fprintln(w, "──\t───────────\t────────\t────\t────────\t──────")

	for _, worker := range result.Data.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			worker.ID,
			worker.EmployeeID,
			worker.Username,
			worker.RealName,
			worker.Position,
			workerStatus(worker.Status),
		)
	}

	w.Flush()
	return nil
}

func workerStatus(status int) string {
	if status == 1 {
		return "active"
	}
	return "disabled"
}

func newWorkersUpdateCmd() *cobra.Command {
	var serverAlias string
	var worker api.Worker

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			worker.ID = id
			return runWorkersUpdate(serverAlias, worker)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")
	cmd.Flags().StringVar(&worker.Username, "username", "", "New username")
	cmd.Flags().StringVar(&worker.RealName, "real-name", "", "New display name")
	cmd.Flags().StringVar(&worker.Email, "email", "", "New email")
	cmd.Flags().StringVar(&worker.Phone, "phone", "", "New phone number")
	cmd.Flags().StringVar(&worker.Position, "position", "", "New position")
	cmd.Flags().IntVar(&worker.Status, "status", 1, "Status (1 active, 0 disabled)")

	return cmd
}

func runWorkersUpdate(serverAlias string, worker api.Worker) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenEmployees); err != nil {
		return err
	}

	result, err := client.UpdateWorker(worker)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	fmt.Printf("✓ Updated employee %d\n", worker.ID)
	return nil
}

func newWorkersDeleteCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete employees by id",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid employee id %q", arg)
				}
				ids = append(ids, id)
			}
			return runWorkersDelete(serverAlias, ids)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runWorkersDelete(serverAlias string, ids []int64) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenEmployees); err != nil {
		return err
	}

	result, err := client.DeleteWorkers(ids)
	if err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted %d employee(s)\n", result.Data)
	return nil
}
