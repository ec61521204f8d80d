package httperr

import (
	"errors"
	"net/http"

	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	ReasonInvalidRequest  = "invalid_request"
	ReasonInvalidID       = "invalid_id"
	ReasonUnauthenticated = "unauthenticated"
)

type Detail struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type Response struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Error   Detail       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// reasons that mean "who are you" rather than "you may not"
var unauthenticated = map[string]bool{
	"invalid_credentials": true,
	ReasonUnauthenticated: true,
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		if unauthenticated[errs.ReasonOf(err)] {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewResponse(lang i18n.Lang, status int, reason string) Response {
	msg := i18n.T(lang, reason)
	return Response{
		Status:  status,
		Message: msg,
		Error:   Detail{Reason: reason, Message: msg},
	}
}

// Abort renders err with its kind's status and localized reason. The
// original error is kept on the gin context for logging.
func Abort(c *gin.Context, lang i18n.Lang, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	abort(c, NewResponse(lang, StatusOf(err), errs.ReasonOf(err)), err)
}

// AbortWithReason renders a rejection that has no domain error behind it,
// such as a malformed path parameter.
func AbortWithReason(c *gin.Context, lang i18n.Lang, status int, reason string, cause error) {
	if cause == nil {
		cause = errors.New(reason)
	}
	abort(c, NewResponse(lang, status, reason), cause)
}

// AbortBinding reports request binding failures as invalid_request and lists
// the offending fields when the validator produced them.
func AbortBinding(c *gin.Context, lang i18n.Lang, err error) {
	resp := NewResponse(lang, http.StatusBadRequest, ReasonInvalidRequest)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	abort(c, resp, err)
}

func abort(c *gin.Context, resp Response, err error) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
