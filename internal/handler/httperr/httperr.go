package httperr

import (
	"log/slog"
	"net/http"

	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders a use case error. The status follows the error kind and the
// message is the sentinel's, so internal details never reach the client.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(err)

	msg := internalMessage
	if sentinel, ok := errs.SentinelOf(err); ok && kind != errs.KindInternal {
		msg = sentinel.Error()
	}

	var detail any
	if kind == errs.KindValidation {
		detail = err.Error()
	}
	if kind == errs.KindInternal {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5),
		)
	}

	AbortWithError(c, status, err, msg, detail)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
}

func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindAuthorization:
		if errs.Is(err, commands.ErrInvalidCredentials) {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
