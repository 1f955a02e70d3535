package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment moderation commands",
}

var listCommentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()
		if err != nil {
			return err
		}
		comments, err := api.ListComments(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		if len(comments) == 0 {
			fmt.Println("No comments found.")
			return nil
		}
		for _, c := range comments {
			fmt.Printf("%d  book=%d user=%d: %s\n", c.ID, c.BookID, c.UserID, c.Content)
		}
		return nil
	},
}

var deleteCommentCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[0])
		}

		api, err := apiClient()
		if err != nil {
			return err
		}
		if err := api.DeleteComment(cmd.Context(), id); err != nil {
			return reportErr(err)
		}
		fmt.Printf("✓ Deleted comment %d\n", id)
		return nil
	},
}

func init() {
	commentCmd.AddCommand(listCommentsCmd)
	commentCmd.AddCommand(deleteCommentCmd)
	rootCmd.AddCommand(commentCmd)
}
