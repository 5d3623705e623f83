package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RedirectDetail tells the client where to go when the page it asked for
// has nothing to show.
type RedirectDetail struct {
	Redirect string `json:"redirect"`
}

// ValidationDetail lists field messages and the first step that has one.
type ValidationDetail struct {
	Fields   map[string]string `json:"fields"`
	Step     int               `json:"step"`
	StepName string            `json:"stepName"`
}

type SelectionDetail struct {
	ReserveDisabled bool   `json:"reserve_disabled"`
	Reason          string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
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
