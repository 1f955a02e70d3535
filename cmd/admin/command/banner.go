package command

// Banners upload as one multipart request, unlike book covers.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Banner management commands",
}

var listBannersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all banners",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		banners, err := api.ListBanners(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		if len(banners) == 0 {
			fmt.Println("No banners found.")
			return nil
		}
		for _, b := range banners {
			state := "disabled"
			if b.Enabled {
				state = "enabled"
			}
			fmt.Printf("%d  %s (%s) -> %s\n", b.ID, b.Title, state, b.Link)
		}
		return nil
	},
}

func bannerInputFromFlags(cmd *cobra.Command, requireImage bool) (client.BannerInput, error) {
	var in client.BannerInput
	in.Title, _ = cmd.Flags().GetString("title")
	in.Link, _ = cmd.Flags().GetString("link")
	in.Enabled, _ = cmd.Flags().GetBool("enabled")

	imagePath, _ := cmd.Flags().GetString("image")
	if imagePath == "" {
		if requireImage {
			return in, fmt.Errorf("--image is required")
		}
		return in, nil
	}
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return in, fmt.Errorf("could not read image file: %w", err)
	}
	in.Filename = filepath.Base(imagePath)
	in.Image = image
	return in, nil
}

var createBannerCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a banner with its image",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := bannerInputFromFlags(cmd, true)
		if err != nil {
			return err
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		banner, err := api.CreateBanner(cmd.Context(), in)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Created banner %d: %s\n", banner.ID, banner.Title)
		return nil
	},
}

var updateBannerCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a banner, replacing the image when --image is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid banner id %q", args[0])
		}
		in, err := bannerInputFromFlags(cmd, false)
		if err != nil {
			return err
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		banner, err := api.UpdateBanner(cmd.Context(), id, in)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Updated banner %d: %s\n", banner.ID, banner.Title)
		return nil
	},
}

var deleteBannerCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid banner id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteBanner(cmd.Context(), id); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted banner %d\n", id)
		return nil
	},
}

func init() {
	bannerCmd.AddCommand(listBannersCmd)
	bannerCmd.AddCommand(createBannerCmd)
	bannerCmd.AddCommand(updateBannerCmd)
	bannerCmd.AddCommand(deleteBannerCmd)

	for _, c := range []*cobra.Command{createBannerCmd, updateBannerCmd} {
		c.Flags().StringP("title", "t", "", "Banner title")
		c.Flags().StringP("link", "l", "", "Target link")
		c.Flags().Bool("enabled", false, "Whether the banner is shown")
		c.Flags().StringP("image", "i", "", "Path to the banner image file")
	}
	createBannerCmd.MarkFlagRequired("title")
	createBannerCmd.MarkFlagRequired("image")
	updateBannerCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(bannerCmd)
}
