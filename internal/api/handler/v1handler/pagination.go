package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/jx"
)

// parsePage reads the page and limit query parameters. A malformed page is
// rejected while a malformed limit falls back to the default.
func (h *Handler) parsePage(r *http.Request) (domain.Page, error) {
	page := domain.Page{Number: 1, Size: h.opts.DefaultLimit}
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			return page, serrors.With(serrors.ErrNotFound, msgInvalidPage)
		}
		page.Number = uint(n)
	}

	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			page.Size = min(uint(n), h.opts.MaxLimit)
		}
	}

	return page, nil
}

// writePage renders a paginated envelope. A page past the end of a non-empty
// listing is reported as not found.
func (h *Handler) writePage(w http.ResponseWriter,
	r *http.Request,
	page domain.Page,
	count int64,
	n int,
	item func(e *jx.Encoder, i int)) {
	if page.Number > page.LastPage(count) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, msgInvalidPage))

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("count")
		e.Int64(count)
		e.FieldStart("next")
		if page.Number < page.LastPage(count) {
			e.Str(pageURL(r, page.Number+1))
		} else {
			e.Null()
		}
		e.FieldStart("previous")
		if page.Number > 1 {
			e.Str(pageURL(r, page.Number-1))
		} else {
			e.Null()
		}
		e.FieldStart("results")
		e.ArrStart()
		for i := range n {
			item(e, i)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// pageURL returns the absolute URL of the request with the page parameter
// replaced. The first page is addressed without a page parameter.
func pageURL(r *http.Request, number uint) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}

	q := r.URL.Query()
	if number <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.FormatUint(uint64(number), 10))
	}
	u.RawQuery = q.Encode()

	return u.String()
}
