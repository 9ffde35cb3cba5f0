package api

import (
	"net/http"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	msgValidation     = "Please correct the highlighted fields"
	msgLoginRequired  = "Please log in to continue"
	msgForbidden      = "Insufficient permissions"
	msgInProgress     = "This action is already in progress"
	msgStale          = "A newer request replaced this one"
	msgRemoteDown     = "The booking service is unavailable. Please try again later."
	msgInternal       = "Internal server error"
	msgNoPendingOrder = "No pending booking to confirm"
	msgInvalidRequest = "Invalid request format"
	msgInvalidID      = "Invalid id"
)

// respondError maps usecase failures to a status and the message shown to
// the user. Specific sentinels are checked before the generic marks.
func respondError(c *gin.Context, err error) {
	status, msg, detail := classify(err)
	httperr.AbortWithError(c, status, err, msg, detail)
}

func classify(err error) (int, string, any) {
	var regErr *commands.RegistrationError
	if errs.As(err, &regErr) {
		return http.StatusBadRequest, regErr.Error(), regErr.Messages
	}
	if fields, ok := errs.ValidationFields(err); ok {
		return http.StatusBadRequest, validationMessage(err, fields), fields
	}

	switch {
	case errs.Is(err, commands.ErrCancelNotConfirmed):
		return http.StatusBadRequest, commands.ErrCancelNotConfirmed.Error(), nil
	case errs.Is(err, commands.ErrRejectNotConfirmed):
		return http.StatusBadRequest, commands.ErrRejectNotConfirmed.Error(), nil
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, msgValidation, nil
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, commands.ErrInvalidCredentials.Error(), nil
	case errs.Is(err, commands.ErrPaymentNotCompleted):
		return http.StatusPaymentRequired, commands.ErrPaymentNotCompleted.Error(), nil
	case errs.Is(err, session.ErrNoPendingIntent):
		return http.StatusNotFound, msgNoPendingOrder, nil
	case errs.Is(err, session.ErrIntentMismatch):
		return http.StatusConflict, session.ErrIntentMismatch.Error(), nil
	case errs.Is(err, booking.ErrAlreadyBooked):
		return http.StatusConflict, booking.ErrAlreadyBooked.Error(), nil
	case errs.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict, "Booking cannot move to that status", nil
	case errs.Is(err, commands.ErrBookingNotListed):
		return http.StatusNotFound, commands.ErrBookingNotListed.Error(), nil
	case errs.Is(err, commands.ErrCatalogUnavailable):
		return http.StatusBadGateway, commands.ErrCatalogUnavailable.Error(), nil
	case errs.Is(err, errs.ErrActionInProgress):
		return http.StatusConflict, msgInProgress, nil
	case errs.Is(err, errs.ErrStaleResponse):
		return http.StatusConflict, msgStale, nil
	}

	if apiErr, ok := remote.AsAPIError(err); ok {
		return classifyRemote(apiErr)
	}

	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, msgLoginRequired, nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, msgForbidden, nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found", nil
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, conflictMessage(err), nil
	case errs.Is(err, errs.ErrRemoteUnavailable):
		return http.StatusBadGateway, msgRemoteDown, nil
	case errs.Is(err, errs.ErrRemoteRejected):
		return http.StatusBadRequest, "The booking service rejected the request", nil
	}
	return http.StatusInternalServerError, msgInternal, nil
}

func classifyRemote(e *remote.APIError) (int, string, any) {
	var detail any
	if len(e.Fields) > 0 {
		detail = e.FieldMessages()
	}
	switch e.Kind {
	case remote.KindUnauthorized:
		return http.StatusUnauthorized, msgLoginRequired, nil
	case remote.KindForbidden:
		return http.StatusForbidden, e.Message(), nil
	case remote.KindNotFound:
		return http.StatusNotFound, e.Message(), nil
	case remote.KindBadRequest:
		return http.StatusBadRequest, e.Message(), detail
	case remote.KindConflict:
		return http.StatusConflict, e.Message(), detail
	default:
		return http.StatusBadGateway, msgRemoteDown, nil
	}
}

func validationMessage(err error, fields map[string]string) string {
	if errs.Is(err, booking.ErrInvalidDateRange) {
		return booking.ErrInvalidDateRange.Error()
	}
	if len(fields) == 1 {
		for _, msg := range fields {
			return msg
		}
	}
	return msgValidation
}

// the wizard reports its own state conflicts in words the form can show
func conflictMessage(err error) string {
	for _, known := range []error{
		venue.ErrAlreadySubmitted,
		venue.ErrNotReadyToSubmit,
		venue.ErrNoNextStage,
		venue.ErrNoPreviousStage,
	} {
		if errs.Is(err, known) {
			return known.Error()
		}
	}
	return "Conflict"
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), msg, nil)
}
