package api

import (
	"net/http"

	reqdto "parking-core/internal/handler/dto/request"
	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/cookie"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const invalidLoginMessage = "Invalid email or password"

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	u, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("User registered successfully", resdto.FromUser(u)))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope{data=resdto.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Inactive accounts get the same answer as bad credentials
		if errs.Is(err, commands.ErrInvalidCredentials) || errs.Is(err, commands.ErrUserInactive) ||
			errs.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, invalidLoginMessage, nil)
			return
		}
		httperr.Abort(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.OK("Login successful", resdto.FromLogin(result.User, result.Token, result.ExpiresIn)))
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; logout only drops the cookie
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromAuthorizedUserView(view)))
}

// @Summary Update current user
// @Description Change the current user's full name
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile update"
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/me [put]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	u, err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.FullName)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Profile updated", resdto.FromUser(u)))
}
