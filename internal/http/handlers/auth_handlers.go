package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/employee-portal/internal/repo"
	"go.uber.org/zap"
)

// LoginHandler godoc
// @Summary Check demo credentials
// @Description Compares username and password verbatim against the seeded accounts.
// @Description The matched account is returned as stored, password included.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {object} LoginResult
// @Router /api/login [post]
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		// Unreadable bodies count as missing fields.
		h.logger.Debug("ignoring login body", zap.Error(err))
		credentials = CredentialsRequest{}
	}

	account, err := h.accountRepo.FindByCredentials(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, repo.ErrAccountNotFound) {
			h.respond(w, http.StatusUnauthorized, LoginResult{Success: false, Message: msgInvalidCredentials})
			return
		}
		h.logger.Error("could not look up account", zap.Error(err))
		h.respond(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: msgInternalError})
		return
	}

	h.logger.Info("login succeeded", zap.String("username", account.Username))
	h.respond(w, http.StatusOK, LoginResult{
		Success: true,
		Message: fmt.Sprintf("歡迎 %s！", account.Name),
		User: &UserResponse{
			Username: account.Username,
			Password: account.Password,
			Name:     account.Name,
		},
	})
}
