package command

// root.go defines the root command for the bookadmin CLI and the shared
// wiring (config, session, API client, navigation controller) the
// subcommands build on.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookadmin/internal/client"
	"bookadmin/internal/config"
	"bookadmin/internal/dashboard"
	"bookadmin/internal/nav"
	"bookadmin/internal/session"
)

var (
	apiURL string // global flag for the API server URL
	cfg    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookadmin",
	Short: "bookadmin - BookHub administration CLI",
	Long: `bookadmin manages a BookHub content platform through its REST API:
- Books, chapters and genres
- Banners and video ads
- Users, wallets and coin top-up requests
- Comment moderation

Use "bookadmin <command> -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	loaded, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if err := loaded.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", cfg.APIBaseURL, "API server URL")
}

func openSession() (*session.Session, error) {
	return session.Open(cfg.CredentialStore)
}

// apiClient builds the resource client with the session injected. Without a
// stored token requests carry the dev bypass marker, which only the dev stub
// accepts.
func apiClient() (*client.Client, error) {
	sess, err := openSession()
	if err != nil {
		return nil, err
	}
	c := client.New(apiURL, sess)
	c.SetTimeout(cfg.HTTPTimeout)
	if cfg.RateLimitPerSecond > 0 {
		c.SetRateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}
	return c, nil
}

// controller builds the navigation controller over the dashboard state,
// restoring history from the state file.
func controller() (*nav.Controller, *dashboard.State, error) {
	api, err := apiClient()
	if err != nil {
		return nil, nil, err
	}
	state := dashboard.NewState(api)

	statePath := cfg.NavStatePath
	if statePath == "" {
		statePath = nav.DefaultStatePath()
	}
	return nav.NewController(state, statePath), state, nil
}

// reportErr prints an actionable message: authentication failures point at
// login instead of showing a generic error.
func reportErr(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("not authorized: run 'bookadmin auth login' first (%w)", err)
	}
	return err
}
