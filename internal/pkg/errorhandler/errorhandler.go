// Package errorhandler maps domain errors to HTTP responses with logging.
package errorhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
	"github.com/mwork/mwork-ads/internal/pkg/response"
)

// Respond writes the HTTP response matching err's place in the error
// taxonomy. Validation and lifecycle errors carry their structured detail
// so the admin UI can render a field-specific message. Unknown errors are
// treated as internal.
func Respond(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		transitionErr *apperror.InvalidTransitionError
		stateErr      *apperror.InvalidStateError
		transportErr  *apperror.TransportError
	)

	switch {
	case errors.As(err, &validationErr):
		response.ErrorWithDetails(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", validationErr.Error(), map[string]string{
			"entity": validationErr.Entity,
			"field":  validationErr.Field,
			"reason": validationErr.Reason,
		})
	case errors.As(err, &notFoundErr):
		response.ErrorWithDetails(w, http.StatusNotFound, "NOT_FOUND", notFoundErr.Error(), map[string]string{
			"entity": notFoundErr.Entity,
			"id":     notFoundErr.ID,
		})
	case errors.As(err, &transitionErr):
		response.ErrorWithDetails(w, http.StatusConflict, "INVALID_TRANSITION", transitionErr.Error(), map[string]string{
			"entity": transitionErr.Entity,
			"id":     transitionErr.ID,
			"from":   transitionErr.From,
			"to":     transitionErr.To,
		})
	case errors.As(err, &stateErr):
		response.ErrorWithDetails(w, http.StatusConflict, "INVALID_STATE", stateErr.Error(), map[string]string{
			"entity": stateErr.Entity,
			"id":     stateErr.ID,
			"state":  stateErr.State,
		})
	case errors.As(err, &transportErr):
		log.Error().Ctx(ctx).Err(err).Str("op", transportErr.Op).Msg("Store failure")
		response.Error(w, http.StatusBadGateway, "STORE_UNAVAILABLE", "Backing store unavailable")
	default:
		log.Error().Ctx(ctx).Err(err).Msg("Unhandled error")
		response.InternalError(w)
	}
}
