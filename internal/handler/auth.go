package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skala-ium/events/internal/domain"
	"github.com/skala-ium/events/internal/errdefs"
	"github.com/skala-ium/events/internal/service"
	"github.com/skala-ium/events/pkg/logger"
)

type VerificationService interface {
	SendCode(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, slackUserID, code string) (string, error)
	Signup(ctx context.Context, input *service.SignupInput) (*domain.Student, error)
}

type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	SlackUserID string `json:"slack_user_id" validate:"required"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

type SignupRequest struct {
	TempToken string     `json:"temp_token" validate:"required"`
	Name      string     `json:"name" validate:"required,max=50"`
	Password  string     `json:"password" validate:"required,min=8,maxbytes=72"`
	Major     *string    `json:"major,omitempty" validate:"omitempty,max=100"`
	ClassID   *uuid.UUID `json:"class_id,omitempty"`
}

type AuthHandler struct {
	svc      VerificationService
	validate *validator.Validate
	log      *logger.Logger
}

func NewAuthHandler(svc VerificationService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		validate: newValidator(),
		log:      log,
	}
}

// newValidator reports fields by their JSON names. maxbytes bounds the UTF-8
// length, which is what bcrypt limits.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req SendCodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	slackUserID, err := h.svc.SendCode(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		h.fail(w, r, "send code", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":       "verification code sent",
		"slack_user_id": slackUserID,
	})
}

func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.svc.VerifyCode(r.Context(), req.SlackUserID, req.Code)
	if err != nil {
		h.fail(w, r, "verify code", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "verification succeeded",
		"temp_token": token,
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	student, err := h.svc.Signup(r.Context(), &service.SignupInput{
		TempToken: req.TempToken,
		Name:      strings.TrimSpace(req.Name),
		Password:  req.Password,
		Major:     req.Major,
		ClassID:   req.ClassID,
	})
	if err != nil {
		h.fail(w, r, "signup", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"student_id": student.ID.String()})
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeErr(w, err)
		return false
	}
	return true
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := mapErr(err)
	if code >= http.StatusInternalServerError {
		h.log.Error(r.Context(), "Auth request failed", zap.String("op", op), zap.Error(err))
	} else {
		h.log.Info(r.Context(), "Auth request rejected", zap.String("op", op), zap.Error(err))
	}
	if errors.Is(err, errdefs.ErrAuthentication) {
		writeErrorJSON(w, code, "invalid or expired token")
		return
	}
	writeErrorJSON(w, code, errorMessage(err, code))
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/slack/send-code", h.SendCode)
		r.Post("/slack/verify-code", h.VerifyCode)
		r.Post("/signup", h.Signup)
	})
}
