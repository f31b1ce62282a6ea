package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/nogi-trainer/internal/platform/apierr"
)

// ErrorEnvelope is the only error body the API emits.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

// RespondAPIError writes err with the status carried by apierr, 500 otherwise.
func RespondAPIError(c *gin.Context, err error) {
	_ = c.Error(err)
	RespondError(c, apierr.StatusOf(err), err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
