package flickr

import (
	"context"
	"fmt"
	"net/url"
)

// LoginURL is the authorization page a user visits to grant perms ("read",
// "write" or "delete"). Only api_key and perms are signed.
func (c *Client) LoginURL(perms string) string {
	u := c.authEndpoint + "/?api_key=" + url.QueryEscape(c.apiKey) + "&perms=" + url.QueryEscape(perms)
	if sig := Signature(c.sharedSecret, Params{"api_key": c.apiKey, "perms": perms}); sig != "" {
		u += "&api_sig=" + sig
	}
	return u
}

// GetTokenFrom exchanges frob for an auth token, which the client then sends
// with every call. The authenticated user is stored too when the response
// describes one.
func (c *Client) GetTokenFrom(ctx context.Context, frob string) (string, error) {
	resp, err := c.Invoke(ctx, "auth.getToken", Params{"frob": frob})
	if err != nil {
		return "", err
	}

	auth := rowOf(resp["auth"])
	token := Text(auth["token"])
	if token == "" {
		return "", fmt.Errorf("auth.getToken: response has no token")
	}
	c.authToken = token

	if user := rowOf(auth["user"]); len(user) > 0 {
		c.user = userFromRow(c, user)
	}
	return token, nil
}
