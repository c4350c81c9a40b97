package auth

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/oauth2"

	"skilllink_backend/pkg/apperrors"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the subset of Google's userinfo payload we consume.
type GoogleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleVerifier resolves a frontend-obtained access token into a verified
// Google identity.
type GoogleVerifier interface {
	Verify(ctx context.Context, accessToken string) (*GoogleUserInfo, error)
}

type googleVerifier struct{}

func NewGoogleVerifier() GoogleVerifier {
	return &googleVerifier{}
}

func (v *googleVerifier) Verify(ctx context.Context, accessToken string) (*GoogleUserInfo, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, ts)

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, apperrors.ErrGoogleError
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, apperrors.ErrInvalidToken
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, apperrors.ErrGoogleError
	}

	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	if info.Email == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return &info, nil
}
