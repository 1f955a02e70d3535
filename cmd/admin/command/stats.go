package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		stats, err := api.GetStats(cmd.Context())
		if err != nil {
			return reportErr(err)
		}

		fmt.Printf("Books: %d\n", stats.TotalBooks)
		fmt.Printf("Chapters: %d\n", stats.TotalChapters)
		fmt.Printf("Users: %d\n", stats.TotalUsers)
		fmt.Printf("Banners: %d\n", stats.TotalBanners)
		fmt.Printf("Pending top-ups: %d\n", stats.PendingTopups)
		fmt.Printf("Coins issued: %d\n", stats.CoinsIssued)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
