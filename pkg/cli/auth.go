package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the portal",
	Long: `Log in to the portal with email and password.

On success the bearer token, role and user id are persisted in the
local session store and the role's landing route is printed.

Examples:
  synvotra login --email user@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == `` {
			return fmt.Errorf("--email is required")
		}
		if password == `` {
			return fmt.Errorf("--password is required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		s, err := a.manager.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("Logged in as %s (%s)\n", email, s.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove the stored session",
	Long: `Log out and remove the stored session.

Safe to run when no session exists. Because the store is shared, this
also logs out every other synvotra process on its next check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		return a.manager.Logout(cmd.Context())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		if !a.store.IsValid() {
			fmt.Println("No active session")
			return nil
		}
		s, err := a.store.Read()
		if err != nil {
			fmt.Println("No active session")
			return nil
		}
		fmt.Printf("user id: %s\nrole:    %s\nexpiry:  %s\n", s.UserID, s.Role, formatExpiry(s.Expiry))
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Resolve a route through the access check",
	Long: `Resolve a route through the access check.

Without a valid session every protected route redirects to the entry
path; with one, opening the entry path redirects to the role's landing
page.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if resolved := a.manager.CheckAccess(args[0]); resolved == args[0] {
			fmt.Printf("%s\n", resolved)
		}
		return nil
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the authenticated user's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		oldPass, _ := cmd.Flags().GetString("old")
		newPass, _ := cmd.Flags().GetString("new")
		if oldPass == `` || newPass == `` {
			return fmt.Errorf("--old and --new are required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.client.ChangePassword(cmd.Context(), oldPass, newPass); err != nil {
			return err
		}
		fmt.Println("Password updated")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	changePasswordCmd.Flags().String("old", "", "current password")
	changePasswordCmd.Flags().String("new", "", "new password")

	rootCmd.AddCommand(loginCmd, logoutCmd, statusCmd, openCmd, changePasswordCmd)
}
