package command

// coins.go covers the admin side of coin top-up requests. Approve and reject are the
// only transitions, and only away from pending.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Coin top-up request commands",
}

var listTopupsCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-up requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		pendingOnly, _ := cmd.Flags().GetBool("pending")

		api, err := apiClient()
		if err != nil {
			return err
		}
		topups, err := api.ListTopupRequests(cmd.Context())
		if err != nil {
			return reportErr(err)
		}

		shown := 0
		for _, t := range topups {
			if pendingOnly && t.Status != client.TopupPending {
				continue
			}
			shown++
			fmt.Printf("Request: %s\n", t.RequestID)
			fmt.Printf("User: %d\n", t.UserID)
			fmt.Printf("Coins: %d (%.2f via %s)\n", t.Coins, t.Amount, t.Method)
			fmt.Printf("Status: %s\n", t.Status)
			fmt.Println(strings.Repeat("-", 50))
		}
		if shown == 0 {
			fmt.Println("No top-up requests found.")
		}
		return nil
	},
}

var approveTopupCmd = &cobra.Command{
	Use:   "approve <request_id>",
	Short: "Approve a pending top-up request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coins, _ := cmd.Flags().GetInt64("coins")
		note, _ := cmd.Flags().GetString("note")

		api, err := apiClient()
		if err != nil {
			return err
		}
		topup, err := api.ApproveTopup(cmd.Context(), args[0], coins, note)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Approved request %s: %d coins to user %d\n", topup.RequestID, topup.Coins, topup.UserID)
		return nil
	},
}

var rejectTopupCmd = &cobra.Command{
	Use:   "reject <request_id>",
	Short: "Reject a pending top-up request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")

		api, err := apiClient()
		if err != nil {
			return err
		}
		topup, err := api.RejectTopup(cmd.Context(), args[0], note)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Rejected request %s\n", topup.RequestID)
		return nil
	},
}

func init() {
	coinsCmd.AddCommand(listTopupsCmd)
	coinsCmd.AddCommand(approveTopupCmd)
	coinsCmd.AddCommand(rejectTopupCmd)

	listTopupsCmd.Flags().Bool("pending", false, "Only show pending requests")

	approveTopupCmd.Flags().Int64P("coins", "c", 0, "Coins to credit")
	approveTopupCmd.Flags().String("note", "", "Admin note")
	approveTopupCmd.MarkFlagRequired("coins")

	rejectTopupCmd.Flags().String("note", "", "Admin note")

	rootCmd.AddCommand(coinsCmd)
}
