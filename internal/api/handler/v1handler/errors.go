package v1handler

import (
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	msgNotAuthenticated = "Authentication credentials were not provided."
	msgInvalidPage      = "Invalid page."
)

var errNotFound = serrors.With(serrors.ErrNotFound, "Not found.") //nolint: gochecknoglobals

// writeError renders err the way the frontend expects: field errors as a map
// of message lists, other client errors under "errors" or "detail". Anything
// without a client facing kind is logged and hidden behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fields serrors.FieldErrors
	hasFields := errors.As(err, &fields)
	msg := serrors.MessageOf(err)

	switch kind := serrors.KindOf(err); kind {
	case serrors.ErrBadRequest, serrors.ErrConflict:
		if hasFields {
			writeFields(w, http.StatusBadRequest, fields)

			return
		}
		writeMessage(w, http.StatusBadRequest, "errors", or(msg, "bad request"))
	case serrors.ErrUnauthorized:
		writeMessage(w, http.StatusUnauthorized, "detail", or(msg, msgNotAuthenticated))
	case serrors.ErrForbidden:
		writeMessage(w, http.StatusForbidden, "detail", or(msg, "You do not have permission to perform this action."))
	case serrors.ErrNotFound:
		if hasFields {
			writeFields(w, http.StatusNotFound, fields)

			return
		}
		writeMessage(w, http.StatusNotFound, "detail", or(msg, "Not found."))
	default:
		logger.Error(r.Context(), "error while serving request", zap.Error(err), zap.String("kind", kind.Error()))
		writeMessage(w, http.StatusInternalServerError, "detail", "internal error")
	}
}

func writeMessage(w http.ResponseWriter, status int, key, msg string) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart(key)
		e.Str(msg)
		e.ObjEnd()
	})
}

func writeFields(w http.ResponseWriter, status int, fields serrors.FieldErrors) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		for _, field := range fields.Fields() {
			e.FieldStart(field)
			e.ArrStart()
			for _, msg := range fields[field] {
				e.Str(msg)
			}
			e.ArrEnd()
		}
		e.ObjEnd()
	})
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
