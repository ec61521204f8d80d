package api

import (
	"net/http"
	"time"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/cookie"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cookieCfg config.CookieConfig, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cookieCfg,
		tokenTTL:  tokenTTL,
	}
}

// @Summary Register
// @Description Create a user or field owner account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.Envelope{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		fail(c, err)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	h.signedIn(c, http.StatusCreated, "user_registered_successfully", result)
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.Envelope{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.signedIn(c, http.StatusOK, "login_successful", result)
}

func (h *AuthHandler) signedIn(c *gin.Context, status int, key string, result *commands.AuthResult) {
	body, err := resdto.FromAuthResult(result, h.tokenTTL)
	if err != nil {
		fail(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.tokenTTL)
	respond(c, status, key, body)
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	respond(c, http.StatusOK, "logout_successful", nil)
}

// @Summary Forgot password
// @Description Issue a one-time reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} resdto.Envelope{data=resdto.OTPResponse}
// @Failure 404 {object} httperr.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	otp, err := h.cmds.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "otp_sent", resdto.FromOTPResult(otp))
}

// @Summary Reset password
// @Description Replace the password using a reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "password_reset_successfully", nil)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=queries.UserView}
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "user_retrieved_successfully", view)
}
