package command

// book.go covers book CRUD, including the two-step cover upload flow.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book management commands",
	Long:  `Manage books: list, view, create, update, delete. Covers upload as a base64 JSON envelope before the create/update call.`,
}

var listBooksCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		books, err := api.ListBooks(cmd.Context())
		if err != nil {
			return reportErr(err)
		}

		if len(books) == 0 {
			fmt.Println("No books found.")
			return nil
		}
		fmt.Printf("Found %d books:\n\n", len(books))
		for _, b := range books {
			fmt.Printf("ID: %d\n", b.ID)
			fmt.Printf("Title: %s\n", b.Title)
			fmt.Printf("Author: %s\n", b.Author)
			if b.Genre != "" {
				fmt.Printf("Genre: %s\n", b.Genre)
			}
			if b.CoverURL != "" {
				fmt.Printf("Cover: %s\n", b.CoverURL)
			}
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var getBookCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one book with its chapters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		book, err := api.GetBook(cmd.Context(), id)
		if err != nil {
			return reportErr(err)
		}

		fmt.Printf("Title: %s\nAuthor: %s\n", book.Title, book.Author)
		if book.Description != "" {
			fmt.Printf("Description: %s\n", book.Description)
		}
		fmt.Printf("Chapters: %d\n", len(book.Chapters))
		for _, ch := range book.Chapters {
			fmt.Printf("  %d. %s\n", ch.ID, ch.Title)
		}
		return nil
	},
}

var createBookCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a book, optionally uploading a cover image",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateBookRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.Author, _ = cmd.Flags().GetString("author")
		req.Description, _ = cmd.Flags().GetString("description")
		req.Genre, _ = cmd.Flags().GetString("genre")
		coverPath, _ := cmd.Flags().GetString("cover")

		api, err := apiClient()
		if err != nil {
			return err
		}

		if coverPath == "" {
			book, err := api.CreateBook(cmd.Context(), req)
			if err != nil {
				return reportErr(err)
			}
			fmt.Printf("✓ Created book %d: %s\n", book.ID, book.Title)
			return nil
		}

		cover, err := os.ReadFile(coverPath)
		if err != nil {
			return fmt.Errorf("could not read cover file: %w", err)
		}
		book, uploaded, err := api.CreateBookWithCover(cmd.Context(), req, filepath.Base(coverPath), cover)
		if err != nil {
			if uploaded != nil {
				// Upload went through, create did not. The file stays on
				// the server; there is no cleanup call.
				fmt.Printf("Cover was uploaded to %s but the book was not created.\n", uploaded.URL)
			}
			return reportErr(err)
		}
		fmt.Printf("✓ Created book %d: %s (cover %s)\n", book.ID, book.Title, uploaded.URL)
		return nil
	},
}

var updateBookCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update book fields, optionally replacing the cover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		var req client.UpdateBookRequest
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			req.Title = &v
		}
		if cmd.Flags().Changed("author") {
			v, _ := cmd.Flags().GetString("author")
			req.Author = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			req.Description = &v
		}
		if cmd.Flags().Changed("genre") {
			v, _ := cmd.Flags().GetString("genre")
			req.Genre = &v
		}
		coverPath, _ := cmd.Flags().GetString("cover")

		api, err := apiClient()
		if err != nil {
			return err
		}

		if coverPath == "" {
			book, err := api.UpdateBook(cmd.Context(), id, req)
			if err != nil {
				return reportErr(err)
			}
			fmt.Printf("✓ Updated book %d: %s\n", book.ID, book.Title)
			return nil
		}

		cover, err := os.ReadFile(coverPath)
		if err != nil {
			return fmt.Errorf("could not read cover file: %w", err)
		}
		book, uploaded, err := api.UpdateBookWithCover(cmd.Context(), id, req, filepath.Base(coverPath), cover)
		if err != nil {
			if uploaded != nil {
				fmt.Printf("Cover was uploaded to %s but the book was not updated.\n", uploaded.URL)
			}
			return reportErr(err)
		}
		fmt.Printf("✓ Updated book %d: %s (cover %s)\n", book.ID, book.Title, uploaded.URL)
		return nil
	},
}

var deleteBookCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteBook(cmd.Context(), id); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted book %d\n", id)
		return nil
	},
}

func init() {
	bookCmd.AddCommand(listBooksCmd)
	bookCmd.AddCommand(getBookCmd)
	bookCmd.AddCommand(createBookCmd)
	bookCmd.AddCommand(updateBookCmd)
	bookCmd.AddCommand(deleteBookCmd)

	createBookCmd.Flags().StringP("title", "t", "", "Book title")
	createBookCmd.Flags().StringP("author", "a", "", "Book author")
	createBookCmd.Flags().StringP("description", "d", "", "Book description")
	createBookCmd.Flags().StringP("genre", "g", "", "Genre name")
	createBookCmd.Flags().String("cover", "", "Path to a cover image file")
	createBookCmd.MarkFlagRequired("title")

	updateBookCmd.Flags().StringP("title", "t", "", "Book title")
	updateBookCmd.Flags().StringP("author", "a", "", "Book author")
	updateBookCmd.Flags().StringP("description", "d", "", "Book description")
	updateBookCmd.Flags().StringP("genre", "g", "", "Genre name")
	updateBookCmd.Flags().String("cover", "", "Path to a cover image file")

	rootCmd.AddCommand(bookCmd)
}
