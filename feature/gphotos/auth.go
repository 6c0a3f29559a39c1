package gphotos

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"photo-manager/core/library"
	"photo-manager/core/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope is the read-only Photos Library scope. Reconciliation never needs
// write access.
const Scope = "https://www.googleapis.com/auth/photoslibrary.readonly"

// redirectAddr is the loopback address the installed-app flow listens on.
// It must match an authorized redirect URI of the OAuth client.
const redirectAddr = "localhost:8080"

// Authenticator manages the OAuth token lifecycle: loading the cached token,
// refreshing it when expired, and running the interactive login flow.
type Authenticator struct {
	oauth     *oauth2.Config
	tokenFile string
	logger    *zap.Logger
}

// NewAuthenticator builds an authenticator from the client secrets file.
func NewAuthenticator(cfg Config, logger *zap.Logger) (*Authenticator, error) {
	credPath, err := utils.ExpandHome(cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(credPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secrets: %v", library.ErrAuth, err)
	}

	oauthCfg, err := google.ConfigFromJSON(raw, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secrets: %v", library.ErrAuth, err)
	}
	oauthCfg.RedirectURL = "http://" + redirectAddr + "/"

	tokenPath, err := utils.ExpandHome(cfg.TokenFile)
	if err != nil {
		return nil, err
	}

	return &Authenticator{oauth: oauthCfg, tokenFile: tokenPath, logger: logger}, nil
}

// Token returns a usable token from the cache, refreshing it when expired.
// It never starts the interactive flow, so scans stay non-interactive and
// fail with ErrAuth when a login is required.
func (a *Authenticator) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := a.cachedToken()
	if err != nil {
		return nil, fmt.Errorf("%w: no cached credentials, run 'photo-manager auth login'", library.ErrAuth)
	}
	if tok.Valid() {
		return tok, nil
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: cached credentials expired, run 'photo-manager auth login'", library.ErrAuth)
	}

	refreshed, err := a.oauth.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %v", library.ErrAuth, err)
	}
	if err := a.saveToken(refreshed); err != nil {
		a.logger.Warn("Failed to cache refreshed token", zap.Error(err))
	}
	return refreshed, nil
}

// HTTPClient returns an http.Client that injects the token into every
// request and refreshes it transparently during long scans.
func (a *Authenticator) HTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, a.oauth.TokenSource(ctx, tok)), nil
}

// Login runs the installed-app OAuth flow: start a loopback listener, print
// the consent URL, wait for the redirect, exchange the code, and cache the
// token for future runs.
func (a *Authenticator) Login(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", redirectAddr)
	if err != nil {
		return nil, fmt.Errorf("start redirect listener on %s: %w", redirectAddr, err)
	}
	defer ln.Close()

	// The state parameter ties the redirect back to this login attempt.
	state := uuid.NewString()

	type callback struct {
		code string
		err  error
	}
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callback{err: fmt.Errorf("%w: state mismatch in redirect", library.ErrAuth)}
		case q.Get("error") != "":
			http.Error(w, "authorization denied", http.StatusBadRequest)
			results <- callback{err: fmt.Errorf("%w: %s", library.ErrAuth, q.Get("error"))}
		default:
			fmt.Fprintln(w, "Authentication complete. You can close this window.")
			results <- callback{code: q.Get("code")}
		}
	})

	srv := &http.Server{Handler: mux}
	go func() { _ = srv.Serve(ln) }()
	defer srv.Close()

	authURL := a.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Visit this URL to authorize access:\n\n  %s\n\n", authURL)

	var cb callback
	select {
	case cb = <-results:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if cb.err != nil {
		return nil, cb.err
	}

	tok, err := a.oauth.Exchange(ctx, cb.code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange failed: %v", library.ErrAuth, err)
	}
	if err := a.saveToken(tok); err != nil {
		return nil, err
	}

	a.logger.Info("Credentials cached", zap.String("file", a.tokenFile))
	return tok, nil
}

// Status describes the cached credential state.
type Status struct {
	// TokenFile is the cache location checked.
	TokenFile string
	// HasToken is true when a cached token exists and parses.
	HasToken bool
	// Valid is true when the cached token is usable right now.
	Valid bool
	// CanRefresh is true when an expired token still has a refresh token.
	CanRefresh bool
	// Expiry is the access token expiry time.
	Expiry time.Time
}

// Status reports the cached credential state without touching the network.
func (a *Authenticator) Status() Status {
	st := Status{TokenFile: a.tokenFile}
	tok, err := a.cachedToken()
	if err != nil {
		return st
	}
	st.HasToken = true
	st.Valid = tok.Valid()
	st.CanRefresh = tok.RefreshToken != ""
	st.Expiry = tok.Expiry
	return st
}

func (a *Authenticator) cachedToken() (*oauth2.Token, error) {
	raw, err := os.ReadFile(a.tokenFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("parse cached token: %w", err)
	}
	return &tok, nil
}

func (a *Authenticator) saveToken(tok *oauth2.Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(a.tokenFile), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	// Owner-only: the cache holds a live refresh token.
	if err := os.WriteFile(a.tokenFile, raw, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	return nil
}
