package validate

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Get returns the message for field, if any.
func (e Errs) Get(field string) (string, bool) {
	for _, ef := range e {
		if ef.Field == field {
			return ef.Msg, true
		}
	}
	return "", false
}

// Map is the field -> message view used by templates and JSON clients.
func (e Errs) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, ef := range e {
		m[ef.Field] = ef.Msg
	}
	return m
}

// FromRules converts the result of validation.ValidateStruct into Errs,
// ordered by the given field names. Fields not listed follow in no
// particular order. Internal rule errors are returned as the second value.
func FromRules(err error, order ...string) (Errs, error) {
	if err == nil {
		return nil, nil
	}
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return nil, err
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return Errs{{Field: "", Msg: err.Error()}}, nil
	}

	out := make(Errs, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, f := range order {
		if fe, ok := verrs[f]; ok && fe != nil {
			out = append(out, ErrField{Field: f, Msg: fe.Error()})
			seen[f] = true
		}
	}
	for f, fe := range verrs {
		if !seen[f] && fe != nil {
			out = append(out, ErrField{Field: f, Msg: fe.Error()})
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
