package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var adsCmd = &cobra.Command{
	Use:   "ads",
	Short: "Video ad management commands",
}

var listAdsCmd = &cobra.Command{
	Use:   "list",
	Short: "List ads (all of them with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		api, err := apiClient()
		if err != nil {
			return err
		}
		var ads []client.Ad
		if all {
			ads, err = api.ListAdsAdmin(cmd.Context())
		} else {
			ads, err = api.ListAds(cmd.Context())
		}
		if err != nil {
			return reportErr(err)
		}
		if len(ads) == 0 {
			fmt.Println("No ads found.")
			return nil
		}
		for _, a := range ads {
			state := "inactive"
			if a.Active {
				state = "active"
			}
			fmt.Printf("%d  %s (%s) %s\n", a.ID, a.Title, state, a.VideoURL)
		}
		return nil
	},
}

var createAdCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an ad with its video (one multipart request)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in client.AdInput
		in.Title, _ = cmd.Flags().GetString("title")
		in.Active, _ = cmd.Flags().GetBool("active")
		videoPath, _ := cmd.Flags().GetString("video")

		video, err := os.ReadFile(videoPath)
		if err != nil {
			return fmt.Errorf("could not read video file: %w", err)
		}
		in.Filename = filepath.Base(videoPath)
		in.Video = video

		api, err := apiClient()
		if err != nil {
			return err
		}
		ad, err := api.CreateAd(cmd.Context(), in)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Created ad %d: %s\n", ad.ID, ad.Title)
		return nil
	},
}

var deleteAdCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an ad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ad id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteAd(cmd.Context(), id); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted ad %d\n", id)
		return nil
	},
}

func init() {
	adsCmd.AddCommand(listAdsCmd)
	adsCmd.AddCommand(createAdCmd)
	adsCmd.AddCommand(deleteAdCmd)

	listAdsCmd.Flags().Bool("all", false, "Include inactive ads (admin listing)")

	createAdCmd.Flags().StringP("title", "t", "", "Ad title")
	createAdCmd.Flags().Bool("active", false, "Serve the ad immediately")
	createAdCmd.Flags().StringP("video", "v", "", "Path to the video file")
	createAdCmd.MarkFlagRequired("title")
	createAdCmd.MarkFlagRequired("video")

	rootCmd.AddCommand(adsCmd)
}
