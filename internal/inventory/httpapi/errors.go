package httpapi

import (
	"errors"
	"inventory-server/internal/infra/httpserver"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/httpapi/internal"
	"inventory-server/internal/inventory/usecases"
	"log/slog"
	"net/http"
)

const invalidBodyErrMessage = "invalid request body"

// replyWithServiceError maps service errors to their status code. Anything
// unexpected is logged and answered with failureMessage.
func replyWithServiceError(w http.ResponseWriter, err error, failureMessage string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.ToValidationErrorResponse(validationErr))
	case errors.Is(err, usecases.ErrInstallationTypeNotFound),
		errors.Is(err, usecases.ErrInstallationNotFound),
		errors.Is(err, usecases.ErrSchemaNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecases.ErrDuplicateSchemaName),
		errors.Is(err, usecases.ErrInstallationTypeCodeTaken):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, usecases.ErrInstallationWithoutType),
		errors.Is(err, usecases.ErrInstallationTypeInactive):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error(failureMessage, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, failureMessage)
	}
}
