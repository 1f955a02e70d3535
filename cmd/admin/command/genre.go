package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List all genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		genres, err := api.ListGenres(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		if len(genres) == 0 {
			fmt.Println("No genres found.")
			return nil
		}
		for _, g := range genres {
			fmt.Printf("%d  %s", g.ID, g.Name)
			if g.Description != "" {
				fmt.Printf(" - %s", g.Description)
			}
			fmt.Println()
		}
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a genre",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.GenreRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")

		api, err := apiClient()
		if err != nil {
			return err
		}
		genre, err := api.CreateGenre(cmd.Context(), req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Created genre %d: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var updateGenreCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid genre id %q", args[0])
		}
		var req client.GenreRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")

		api, err := apiClient()
		if err != nil {
			return err
		}
		genre, err := api.UpdateGenre(cmd.Context(), id, req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Updated genre %d: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid genre id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteGenre(cmd.Context(), id); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted genre %d\n", id)
		return nil
	},
}

func init() {
	genreCmd.AddCommand(listGenresCmd)
	genreCmd.AddCommand(createGenreCmd)
	genreCmd.AddCommand(updateGenreCmd)
	genreCmd.AddCommand(deleteGenreCmd)

	createGenreCmd.Flags().StringP("name", "n", "", "Genre name")
	createGenreCmd.Flags().StringP("description", "d", "", "Genre description")
	createGenreCmd.MarkFlagRequired("name")

	updateGenreCmd.Flags().StringP("name", "n", "", "Genre name")
	updateGenreCmd.Flags().StringP("description", "d", "", "Genre description")
	updateGenreCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(genreCmd)
}
