package v1handler

import (
	"foodgram/internal/accounts"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// Register creates a user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input accounts.RegisterInput
	fields := serrors.FieldErrors{}
	if err := h.readJSON(w, r, func(d *jx.Decoder) error {
		return decodeObject(d, func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "email":
				input.Email, err = decodeString(d, fields, key)
			case "username":
				input.Username, err = decodeString(d, fields, key)
			case "first_name":
				input.FirstName, err = decodeString(d, fields, key)
			case "last_name":
				input.LastName, err = decodeString(d, fields, key)
			case "password":
				input.Password, err = decodeString(d, fields, key)
			default:
				err = d.Skip()
			}

			return err //nolint: wrapcheck
		})
	}); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := fields.Err(); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Accounts.Register(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeCreatedUser(e, user) })
}

// ListUsers returns a page of users ordered by username.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Accounts.Users(r.Context(), viewerID(r.Context()), page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writePage(w, r, page, res.Count, len(res.Users), func(e *jx.Encoder, i int) {
		encodeUser(e, &res.Users[i])
	})
}

// GetUser returns a single user profile.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Accounts.User(r.Context(), viewerID(r.Context()), domain.UserID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeUser(e, user) })
}

// Me returns the profile of the caller.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := SessionFromContext(r.Context()).User
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeUser(e, &user) })
}

// SetPassword changes the password of the caller.
func (h *Handler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var input accounts.SetPasswordInput
	fields := serrors.FieldErrors{}
	if err := h.readJSON(w, r, func(d *jx.Decoder) error {
		return decodeObject(d, func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "new_password":
				input.NewPassword, err = decodeString(d, fields, key)
			case "current_password":
				input.CurrentPassword, err = decodeString(d, fields, key)
			default:
				err = d.Skip()
			}

			return err //nolint: wrapcheck
		})
	}); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := fields.Err(); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Accounts.SetPassword(r.Context(), viewerID(r.Context()), input); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Login exchanges credentials for an auth token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input accounts.LoginInput
	fields := serrors.FieldErrors{}
	if err := h.readJSON(w, r, func(d *jx.Decoder) error {
		return decodeObject(d, func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "email":
				input.Email, err = decodeString(d, fields, key)
			case "password":
				input.Password, err = decodeString(d, fields, key)
			default:
				err = d.Skip()
			}

			return err //nolint: wrapcheck
		})
	}); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := fields.Err(); err != nil {
		h.writeError(w, r, err)

		return
	}

	token, err := h.deps.Accounts.Login(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("auth_token")
		e.Str(token)
		e.ObjEnd()
	})
}

// Logout revokes the token the request was authenticated with.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Accounts.Logout(r.Context(), *SessionFromContext(r.Context())); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Subscriptions lists the authors the caller follows.
func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Accounts.Subscriptions(r.Context(), viewerID(r.Context()), page, recipesLimit(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writePage(w, r, page, res.Count, len(res.Authors), func(e *jx.Encoder, i int) {
		h.encodeAuthor(e, &res.Authors[i])
	})
}

// Subscribe follows the author in the path.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	author, err := h.deps.Accounts.Subscribe(r.Context(), viewerID(r.Context()), domain.UserID(id), recipesLimit(r))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { h.encodeAuthor(e, author) })
}

// Unsubscribe stops following the author in the path.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Accounts.Unsubscribe(r.Context(), viewerID(r.Context()), domain.UserID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} URL parameter. Non numeric IDs cannot match a row.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errNotFound
	}

	return id, nil
}

// recipesLimit parses recipes_limit; anything but a positive integer means no limit.
func recipesLimit(r *http.Request) uint {
	n, err := strconv.ParseUint(r.URL.Query().Get("recipes_limit"), 10, 32)
	if err != nil {
		return 0
	}

	return uint(n)
}
