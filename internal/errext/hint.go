package errext

import "errors"

// HasHint is a wrapper around an error with an attached user hint, such as
// a suggestion on how to fix it.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches hint to err. If err already had a hint the result reads
// "new hint (old hint)". A nil err stays nil.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error {
	return wh.error
}

func (wh withHint) Hint() string {
	hint := wh.hint
	var oldhint HasHint
	if errors.As(wh.error, &oldhint) {
		hint = hint + " (" + oldhint.Hint() + ")"
	}
	return hint
}

var _ HasHint = withHint{}

// Format splits err into a message and a map of log fields. A hint, if
// present, becomes the "hint" field.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]interface{})
	var herr HasHint
	if errors.As(err, &herr) {
		fields["hint"] = herr.Hint()
	}
	return err.Error(), fields
}
