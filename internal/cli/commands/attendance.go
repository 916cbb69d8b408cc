package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/officehub-dev/officehub/internal/cli/guard"
)

// NewSignInCmd creates the sign-in command
func NewSignInCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "sign-in",
		Short: "Record the start of your working day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignIn(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runSignIn(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenAttendance); err != nil {
		return err
	}

	result, err := client.SignIn(time.Now())
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	if err := businessErr(result); err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	fmt.Println("✓ Signed in.")
	if result.Data != nil {
		fmt.Printf("  Time: %s\n", result.Data.SignInTime)
	}
	return nil
}

// NewSignOutCmd creates the sign-out command
func NewSignOutCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "sign-out",
		Short: "Record the end of your working day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignOut(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runSignOut(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenAttendance); err != nil {
		return err
	}

	result, err := client.SignOut(time.Now())
	if err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	if err := businessErr(result); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	fmt.Println("✓ Signed out for the day.")
	return nil
}

// NewRecordsCmd creates the records command
func NewRecordsCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List your attendance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runRecords(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenAttendance); err != nil {
		return err
	}

	result, err := client.AttendanceRecords()
	if err != nil {
		return fmt.Errorf("failed to fetch records: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Println("No attendance records found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIGN IN\tSIGN OUT\tAUTO CLOSED")
	fmt.Fprintln(w, "───────\t────────\t───────────")

	for _, record := range result.Data {
		signOut := record.SignOutTime
		if signOut == "" {
			signOut = "-"
		}
		auto := ""
		if record.AutoClosed {
			auto = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", record.SignInTime, signOut, auto)
	}

	w.Flush()
	return nil
}

// NewMeetingRoomsCmd creates the meeting-rooms command
func NewMeetingRoomsCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "meeting-rooms",
		Short: "Show meeting room availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingRooms(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from officehub.json")

	return cmd
}

func runMeetingRooms(serverAlias string) error {
	client, sessions, err := newAPIClient(serverAlias)
	if err != nil {
		return err
	}
	if err := requireScreen(sessions, guard.ScreenDashboard); err != nil {
		return err
	}

	result, err := client.MeetingRoomStatus()
	if err != nil {
		return fmt.Errorf("failed to fetch meeting rooms: %w", err)
	}
	if err := businessErr(result); err != nil {
		return err
	}

	if len(result.Data) == 0 {
		fmt.Println("No meeting rooms configured.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCAPACITY\tSTATUS")
	fmt.Fprintln(w, "────\t────────\t──────")

	for _, room := range result.Data {
		fmt.Fprintf(w, "%s\t%d\t%s\n", room.Name, room.Capacity, room.Status)
	}

	w.Flush()
	return nil
}
