package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Chapter management commands (scoped to a book)",
}

var chapterBookID int64

var listChaptersCmd = &cobra.Command{
	Use:   "list",
	Short: "List a book's chapters",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		chapters, err := api.ListChapters(cmd.Context(), chapterBookID)
		if err != nil {
			return reportErr(err)
		}
		if len(chapters) == 0 {
			fmt.Println("No chapters found.")
			return nil
		}
		for _, ch := range chapters {
			fmt.Printf("%d. %s (%s)\n", ch.ID, ch.Title, ch.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var addChapterCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a chapter to a book",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.ChapterRequest
		req.Title, _ = cmd.Flags().GetString("title")
		contentPath, _ := cmd.Flags().GetString("content-file")
		if contentPath != "" {
			data, err := os.ReadFile(contentPath)
			if err != nil {
				return fmt.Errorf("could not read content file: %w", err)
			}
			req.Content = string(data)
		} else {
			req.Content, _ = cmd.Flags().GetString("content")
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		chapter, err := api.CreateChapter(cmd.Context(), chapterBookID, req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Added chapter %d: %s\n", chapter.ID, chapter.Title)
		return nil
	},
}

var updateChapterCmd = &cobra.Command{
	Use:   "update <chapter_id>",
	Short: "Update a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid chapter id %q", args[0])
		}
		var req client.ChapterRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.Content, _ = cmd.Flags().GetString("content")

		api, err := apiClient()
		if err != nil {
			return err
		}
		chapter, err := api.UpdateChapter(cmd.Context(), chapterBookID, chapterID, req)
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Updated chapter %d: %s\n", chapter.ID, chapter.Title)
		return nil
	},
}

var deleteChapterCmd = &cobra.Command{
	Use:   "delete <chapter_id>",
	Short: "Delete a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid chapter id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteChapter(cmd.Context(), chapterBookID, chapterID); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted chapter %d\n", chapterID)
		return nil
	},
}

func init() {
	chapterCmd.PersistentFlags().Int64VarP(&chapterBookID, "book", "b", 0, "Book ID the chapters belong to")
	chapterCmd.MarkPersistentFlagRequired("book")

	chapterCmd.AddCommand(listChaptersCmd)
	chapterCmd.AddCommand(addChapterCmd)
	chapterCmd.AddCommand(updateChapterCmd)
	chapterCmd.AddCommand(deleteChapterCmd)

	addChapterCmd.Flags().StringP("title", "t", "", "Chapter title")
	addChapterCmd.Flags().StringP("content", "c", "", "Chapter text")
	addChapterCmd.Flags().String("content-file", "", "Read chapter text from a file")
	addChapterCmd.MarkFlagRequired("title")

	updateChapterCmd.Flags().StringP("title", "t", "", "Chapter title")
	updateChapterCmd.Flags().StringP("content", "c", "", "Chapter text")

	rootCmd.AddCommand(chapterCmd)
}
