package command

// auth.go handles login, registration, logout and token inspection.

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the BookHub API server. Supports login, registration, logout and status.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your BookHub admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		api, err := apiClient()
		if err != nil {
			return err
		}
		response, err := api.Login(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		if err := sess.Login(response.Token); err != nil {
			return fmt.Errorf("could not store token: %w", err)
		}

		fmt.Println("✓ Successfully logged in!")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new BookHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Fullname, _ = cmd.Flags().GetString("fullname")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		api, err := apiClient()
		if err != nil {
			return err
		}
		user, err := api.Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("✓ Registration successful! Please login to continue.")
		fmt.Printf("User ID: %d\n", user.ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		if err := sess.Logout(); err != nil {
			return fmt.Errorf("could not clear token: %w", err)
		}
		// Logout changes the auth posture only; navigation state is kept.
		fmt.Println("✓ Successfully logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who the stored token says you are",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		id, err := sess.Identity()
		if err != nil {
			fmt.Println("Not logged in. Requests will use the dev bypass marker.")
			return nil
		}
		fmt.Printf("Subject: %s\n", id.Subject)
		if id.Email != "" {
			fmt.Printf("Email: %s\n", id.Email)
		}
		if id.Role != "" {
			fmt.Printf("Role: %s\n", id.Role)
		}
		if !id.ExpiresAt.IsZero() {
			fmt.Printf("Expires: %s", id.ExpiresAt.Format("2006-01-02 15:04:05"))
			if id.Expired() {
				fmt.Print(" (EXPIRED)")
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(authStatusCmd)

	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringP("fullname", "n", "", "Full name for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.MarkFlagRequired("fullname")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(authCmd)
}
