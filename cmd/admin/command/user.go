package command

// user.go covers user CRUD plus direct wallet credits. Deleting an admin account
// is refused client-side, before any request goes out.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		users, err := api.ListUsers(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		fmt.Printf("Found %d users:\n\n", len(users))
		for _, u := range users {
			fmt.Printf("ID: %d\n", u.ID)
			fmt.Printf("Name: %s\n", u.Fullname)
			fmt.Printf("Email: %s\n", u.Email)
			fmt.Printf("Role: %s\n", u.Role)
			fmt.Printf("Coins: %d\n", u.Coins)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateUserRequest
		req.Fullname, _ = cmd.Flags().GetString("fullname")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Role, _ = cmd.Flags().GetString("role")

		api, err := apiClient()
		if err != nil {
			return err
		}
		user, err := api.CreateUser(cmd.Context(), req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Created user %d: %s (%s)\n", user.ID, user.Fullname, user.Role)
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update user fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		var req client.UpdateUserRequest
		if cmd.Flags().Changed("fullname") {
			v, _ := cmd.Flags().GetString("fullname")
			req.Fullname = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			req.Email = &v
		}
		if cmd.Flags().Changed("role") {
			v, _ := cmd.Flags().GetString("role")
			req.Role = &v
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		user, err := api.UpdateUser(cmd.Context(), id, req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Updated user %d: %s\n", user.ID, user.Fullname)
		return nil
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user (admins are refused)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		// Fetch first so the role guard sees the real role.
		user, err := api.GetUser(cmd.Context(), id)
		if err != nil {
			return reportErr(err)
		}
		if err := api.DeleteUser(cmd.Context(), *user); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted user %d (%s)\n", user.ID, user.Email)
		return nil
	},
}

var creditWalletCmd = &cobra.Command{
	Use:   "credit <id>",
	Short: "Credit coins to a user's wallet directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		var req client.WalletCreditRequest
		req.Coins, _ = cmd.Flags().GetInt64("coins")
		req.Note, _ = cmd.Flags().GetString("note")

		api, err := apiClient()
		if err != nil {
			return err
		}
		user, err := api.CreditWallet(cmd.Context(), id, req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Credited %d coins to %s (balance %d)\n", req.Coins, user.Email, user.Coins)
		return nil
	},
}

var listFollowsCmd = &cobra.Command{
	Use:   "follows <id>",
	Short: "List the books a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		follows, err := api.ListFollows(cmd.Context(), id)
		if err != nil {
			return reportErr(err)
		}
		if len(follows) == 0 {
			fmt.Println("No follows.")
			return nil
		}
		for _, f := range follows {
			fmt.Printf("book %d (since %s)\n", f.BookID, f.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(updateUserCmd)
	userCmd.AddCommand(deleteUserCmd)
	userCmd.AddCommand(creditWalletCmd)
	userCmd.AddCommand(listFollowsCmd)

	createUserCmd.Flags().StringP("fullname", "n", "", "Full name")
	createUserCmd.Flags().StringP("email", "e", "", "Email address")
	createUserCmd.Flags().StringP("password", "p", "", "Password")
	createUserCmd.Flags().StringP("role", "r", "user", "Role: user, author or admin")
	createUserCmd.MarkFlagRequired("fullname")
	createUserCmd.MarkFlagRequired("email")
	createUserCmd.MarkFlagRequired("password")

	updateUserCmd.Flags().StringP("fullname", "n", "", "Full name")
	updateUserCmd.Flags().StringP("email", "e", "", "Email address")
	updateUserCmd.Flags().StringP("role", "r", "", "Role: user, author or admin")

	creditWalletCmd.Flags().Int64P("coins", "c", 0, "Coins to credit")
	creditWalletCmd.Flags().String("note", "", "Audit note")
	creditWalletCmd.MarkFlagRequired("coins")

	rootCmd.AddCommand(userCmd)
}
