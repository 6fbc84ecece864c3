package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/app"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeMessageError(w, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("registration rejected")
		writeMessageError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Msg: app.MsgUserCreated}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeMessageError(w, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("login rejected")
		writeMessageError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeMessageError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString, ID: foundUser.UserID}, http.StatusOK)
}

// protected greets the caller; it doubles as a token check for the web client.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeMessageError(w, ErrEmptyAuthorizationHeader)
		return
	}

	user, err := h.services.AuthService.WhoAmI(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Int64("id", userID).Msg("whoami failed")
		writeMessageError(w, err)
		return
	}

	utils.WriteJSON(w, models.WhoAmIResponse{Msg: app.MsgGreetingPrefix + user.Username, ID: user.UserID}, http.StatusOK)
}
