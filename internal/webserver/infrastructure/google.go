package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// OAuthUser holds the identity returned by an OAuth provider
type OAuthUser struct {
	Email string
	Name  string
}

// Google signs users in through Google's OpenID Connect endpoints
type Google struct {
	config *oauth2.Config
}

func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     endpoints.Google,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

// AuthCodeURL returns the provider URL users are redirected to in order to sign in
func (g *Google) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// User exchanges the authorization code for a token and reads the user profile with it
func (g *Google) User(ctx context.Context, code string) (OAuthUser, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return OAuthUser{}, fmt.Errorf("error exchanging authorization code: %w", err)
	}

	res, err := g.config.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return OAuthUser{}, fmt.Errorf("error requesting user info: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return OAuthUser{}, fmt.Errorf("user info request returned status %d", res.StatusCode)
	}

	var info struct {
		Email     string `json:"email"`
		GivenName string `json:"given_name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return OAuthUser{}, fmt.Errorf("error decoding user info: %w", err)
	}
	if info.Email == "" {
		return OAuthUser{}, fmt.Errorf("user info has no email")
	}

	return OAuthUser{Email: info.Email, Name: info.GivenName}, nil
}
