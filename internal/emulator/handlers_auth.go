package emulator

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	id, err := h.identity.signUp(req.Email, req.Password, req.DisplayName)
	if err != nil {
		log.Err(err).Str("func", "Handler.signUp").Msg("sign-up rejected")
		switch {
		case errors.Is(err, errEmailInUse):
			utils.WriteError(w, http.StatusConflict, app.CodeEmailInUse, err.Error())
		case errors.Is(err, errInvalidEmail):
			utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidEmail, err.Error())
		case errors.Is(err, errWeakPassword):
			utils.WriteError(w, http.StatusBadRequest, app.CodeWeakPassword, err.Error())
		default:
			utils.WriteError(w, http.StatusInternalServerError, app.CodeInternal, err.Error())
		}
		return
	}

	h.writeAuthResponse(w, r, id)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	id, err := h.identity.signIn(req.Email, req.Password)
	if err != nil {
		logger.FromRequest(r).Warn().Str("func", "Handler.signIn").Msg("sign-in rejected")
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidCredential, err.Error())
		return
	}

	h.writeAuthResponse(w, r, id)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	tokenString, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))
	h.identity.revoke(tokenString)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, id identity) {
	token, err := utils.GenerateSessionToken(utils.SessionTokenParams{
		Issuer:   tokenIssuer,
		UserID:   id.uid,
		DeviceID: tokenDeviceID,
		IssuedAt: h.clock.Now(),
		Duration: tokenDuration,
		SignKey:  h.signKey,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.writeAuthResponse").Msg("error issuing identity token")
		utils.WriteError(w, http.StatusInternalServerError, app.CodeInternal, "error issuing token")
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		UID:         id.uid,
		Email:       id.email,
		DisplayName: id.displayName,
		IDToken:     token.String(),
	}, http.StatusOK)
}

// decodeBody reads a JSON body into v, keeping numbers as json.Number. It
// writes a 400 response and returns false on failure.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, "error reading request body")
		return false
	}
	if err = decodeJSON(body, v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid request body")
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, "invalid JSON body")
		return false
	}
	return true
}
