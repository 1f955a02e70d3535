package command

// nav.go drives dashboard navigation. The current view and its history persist in
// a state file, so view/back/forward work across invocations the way browser
// history does across reloads.

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookadmin/internal/nav"
)

var viewCmd = &cobra.Command{
	Use:   "view <name[:book_id]>",
	Short: "Navigate to a dashboard view",
	Long: `Navigate to a dashboard view and load its data. Views:
dashboard, books, book:<id>, chapters:<id>, banners, genres, users, coins, settings.

Detail views fetch the selected book first; if that fetch fails the
current view is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := nav.ParseFragment(args[0])
		if err != nil {
			return err
		}

		ctrl, state, err := controller()
		if err != nil {
			return err
		}
		if err := ctrl.Navigate(cmd.Context(), target); err != nil {
			return reportErr(err)
		}
		fmt.Print(state.Render(ctrl.Current()))
		return nil
	},
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "History navigation (back, forward, current)",
}

var navBackCmd = &cobra.Command{
	Use:   "back",
	Short: "Go back one view in the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, state, err := controller()
		if err != nil {
			return err
		}
		v, err := ctrl.Back(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		fmt.Print(state.Render(v))
		return nil
	},
}

var navForwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Go forward one view in the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, state, err := controller()
		if err != nil {
			return err
		}
		v, err := ctrl.Forward(cmd.Context())
		if err != nil {
			return reportErr(err)
		}
		fmt.Print(state.Render(v))
		return nil
	},
}

var navCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current view and reload its data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, state, err := controller()
		if err != nil {
			return err
		}
		if err := ctrl.Reload(cmd.Context()); err != nil {
			return reportErr(err)
		}
		fmt.Print(state.Render(ctrl.Current()))
		return nil
	},
}

func init() {
	navCmd.AddCommand(navBackCmd)
	navCmd.AddCommand(navForwardCmd)
	navCmd.AddCommand(navCurrentCmd)

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(navCmd)
}
