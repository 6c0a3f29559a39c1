// Package gphotos scans a Google Photos library through the Photos Library API.
//
// # Authentication
//
// Access uses the OAuth installed-app flow with the read-only scope. The
// 'auth login' command runs the interactive flow once and caches the token
// under the user's config directory; scans then reuse and refresh the cached
// token without ever prompting. A scan on a machine with no usable token
// fails with library.ErrAuth instead of opening a browser.
//
// # Listing
//
// Albums are fetched from the /albums endpoint and, when enabled, the
// /sharedAlbums endpoint, following nextPageToken until the listing is
// complete. The service reports mediaItemsCount as a JSON string; it is
// converted on the way in. Albums without a title are reported as "Untitled".
//
// # Failure Handling
//
// Rate limits (429), server errors (5xx), and transport failures are
// retried with exponential backoff up to the configured retry limit.
// 401 and 403 responses fail immediately; retrying cannot fix revoked or
// expired credentials.
package gphotos
