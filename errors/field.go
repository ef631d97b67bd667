package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field returns err annotated with the field it was found in. It returns nil
// if err is nil.
//
// The field is named by its Go path, for example Threshold or, for the third
// owner of a wallet, Owners.2. Use FieldPath to build paths with indexes.
func Field(path string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, path: path, desc: description}
}

// AppendField adds the field error of fieldErr, if any, to errs.
func AppendField(errs error, path string, fieldErr error) error {
	return Append(errs, Field(path, fieldErr, ""))
}

// FieldPath joins field names and element indexes into a path, so that
// FieldPath("Owners", 2) is "Owners.2".
func FieldPath(elems ...interface{}) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case string:
			parts[i] = v
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, ".")
}

type fieldError struct {
	parent error
	path   string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("%s: %s", e.path, e.parent)
	}
	return fmt.Sprintf("%s: %s: %s", e.path, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.path
}

// FieldErrors returns every error created by Field for given path that is
// found in err, including members of appended errors.
func FieldErrors(err error, path string) []error {
	var found []error
	collectFields(err, path, &found)
	return found
}

func collectFields(err error, path string, found *[]error) {
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == path {
			*found = append(*found, err)
			return
		}
		if u, ok := err.(unpacker); ok {
			// Members are every child there is, there is nothing
			// left to follow through Cause.
			for _, member := range u.Unpack() {
				collectFields(member, path, found)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}

type fielder interface {
	Field() string
}
