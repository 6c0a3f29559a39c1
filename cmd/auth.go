package cmd

import (
	"fmt"
	"time"

	"photo-manager/core/config"
	"photo-manager/core/logger"
	"photo-manager/feature/gphotos"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var authCredentials string

// authCmd is the parent command for credential operations.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage remote service credentials",
	Long: `Manage the OAuth credentials used to read the remote album service.

'auth login' runs the interactive browser flow once and caches the token;
'auth status' reports whether a cached token exists and when it expires.`,
}

// authLoginCmd runs the interactive OAuth flow and caches the token.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the interactive OAuth flow and cache the token",
	RunE:  runAuthLogin,
}

// authStatusCmd reports the cached credential state.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cached credential status",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.PersistentFlags().StringVar(&authCredentials, "credentials", "", "OAuth client secrets JSON (defaults to configured GOOGLE_CREDENTIALS_FILE)")

	authCmd.AddCommand(authLoginCmd, authStatusCmd)
	RootCmd.AddCommand(authCmd)
}

// newAuthenticator is the shared preamble of both auth subcommands.
func newAuthenticator() (*gphotos.Authenticator, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if authCredentials != "" {
		cfg.Google.CredentialsFile = authCredentials
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	authn, err := gphotos.NewAuthenticator(cfg.Google, l)
	if err != nil {
		return nil, nil, err
	}
	return authn, l, nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	authn, l, err := newAuthenticator()
	if err != nil {
		return err
	}

	tok, err := authn.Login(cmd.Context())
	if err != nil {
		return err
	}

	l.Info("Login successful", zap.Time("expires", tok.Expiry))
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	authn, _, err := newAuthenticator()
	if err != nil {
		return err
	}

	st := authn.Status()

	fmt.Println("\n=== Credential Status ===")
	fmt.Printf("Token cache:  %s\n", st.TokenFile)
	switch {
	case !st.HasToken:
		fmt.Println("Status:       no cached token, run 'photo-manager auth login'")
	case st.Valid:
		fmt.Printf("Status:       valid until %s\n", st.Expiry.Format(time.RFC1123))
	case st.CanRefresh:
		fmt.Printf("Status:       expired %s, refreshes automatically on the next scan\n", st.Expiry.Format(time.RFC1123))
	default:
		fmt.Println("Status:       expired with no refresh token, run 'photo-manager auth login'")
	}
	fmt.Println()

	return nil
}
