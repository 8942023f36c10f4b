package serrors

import (
	"sort"
	"strings"
)

// FieldErrors collects validation messages keyed by the request field they
// refer to. It is usually wrapped into a semantic error with ErrBadRequest so
// transports can render every message next to its field.
type FieldErrors map[string][]string

// Add appends msg to the messages of field.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Has reports whether at least one message was collected for field.
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// Empty reports whether no message was collected.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Fields returns the field names in lexical order.
func (f FieldErrors) Fields() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Error implements the error interface as "field: msg; field: msg".
func (f FieldErrors) Error() string {
	var b strings.Builder
	for i, field := range f.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(f[field], ", "))
	}

	return b.String()
}

// Err returns nil when no message was collected, otherwise f wrapped with
// ErrBadRequest.
func (f FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}

	return Wrap(ErrBadRequest, f, "validation failed")
}

// Invalid builds a bad request error carrying a single field message.
func Invalid(field, msg string) *Error {
	return Wrap(ErrBadRequest, FieldErrors{field: {msg}}, "validation failed")
}
