package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/studytrack/models"
)

// emailFor maps a username onto the email-shaped identifier the identity
// provider requires. The mapping is case-insensitive.
func (h *httpBackend) emailFor(username string) string {
	return strings.ToLower(strings.TrimSpace(username)) + "@" + h.emailDomain
}

func (h *httpBackend) SignUp(ctx context.Context, username, password, avatar string) models.Result[models.RemoteSession] {
	log := h.logger.GetChildLogger()

	auth, err := h.authenticate(ctx, "/v1/auth/signUp", false, models.AuthRequest{
		Email:       h.emailFor(username),
		Password:    password,
		DisplayName: username,
	})
	if err != nil {
		return fail[models.RemoteSession](log, "httpBackend.SignUp", err)
	}

	profile := models.RemoteProfile{
		UserID:    auth.UID,
		Username:  username,
		Avatar:    avatar,
		CreatedAt: h.clock.Now().UTC(),
	}
	if res := h.SetUserProfile(ctx, profile); !res.Success {
		log.Error().Str("func", "httpBackend.SignUp").Str("user_id", auth.UID).
			Msg("account created but profile document was not written")
	}

	return models.Ok(models.RemoteSession{UserID: auth.UID, Username: username, Token: auth.IDToken})
}

func (h *httpBackend) SignIn(ctx context.Context, username, password string) models.Result[models.RemoteSession] {
	auth, err := h.authenticate(ctx, "/v1/auth/signIn", true, models.AuthRequest{
		Email:    h.emailFor(username),
		Password: password,
	})
	if err != nil {
		return fail[models.RemoteSession](h.logger, "httpBackend.SignIn", err)
	}

	name := auth.DisplayName
	if name == "" {
		name = username
	}
	return models.Ok(models.RemoteSession{UserID: auth.UID, Username: name, Token: auth.IDToken})
}

func (h *httpBackend) SignOut(ctx context.Context) models.Result[struct{}] {
	if h.Token() == "" {
		return models.Ok(struct{}{})
	}

	_, err := h.call(ctx, false, func(req *resty.Request) (*resty.Response, error) {
		return req.Post("/v1/auth/signOut")
	})
	h.SetToken("")
	if err != nil {
		return fail[struct{}](h.logger, "httpBackend.SignOut", err)
	}
	return models.Ok(struct{}{})
}

func (h *httpBackend) authenticate(ctx context.Context, url string, idempotent bool, body models.AuthRequest) (models.AuthResponse, error) {
	resp, err := h.call(ctx, idempotent, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(body).Post(url)
	})
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode auth response: %w", err)
	}
	h.SetToken(auth.IDToken)
	return auth, nil
}
