// Package failure aggregates the ordered error messages produced by a
// multi-step operation: a context message describing the failed step followed
// by the messages reported by the layer below.
package failure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

func format(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func newList() *multierror.Error {
	return &multierror.Error{ErrorFormat: format}
}

// New returns a failure holding a single message.
func New(msg string) error {
	return multierror.Append(newList(), errors.New(msg))
}

// Newf is New with formatting.
func Newf(layout string, args ...any) error {
	return New(fmt.Sprintf(layout, args...))
}

// Wrap returns a failure whose messages are msg followed by the messages of
// cause. A nil cause yields New(msg).
func Wrap(msg string, cause error) error {
	list := multierror.Append(newList(), errors.New(msg))
	if cause != nil {
		list = multierror.Append(list, cause)
	}
	return list
}

// Wrapf is Wrap with formatting.
func Wrapf(cause error, layout string, args ...any) error {
	return Wrap(fmt.Sprintf(layout, args...), cause)
}

// Append accumulates errs after err, keeping call order. It returns nil when
// every argument is nil.
func Append(err error, errs ...error) error {
	list := newList()
	for _, e := range append([]error{err}, errs...) {
		if e != nil {
			list = multierror.Append(list, e)
		}
	}
	return list.ErrorOrNil()
}

// Recovered turns a recovered panic value into a failure carrying its text.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return New(err.Error())
	}
	return New(fmt.Sprint(r))
}

// Messages returns the ordered message list carried by err.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var list *multierror.Error
	if errors.As(err, &list) {
		msgs := make([]string, 0, len(list.Errors))
		for _, e := range list.Errors {
			msgs = append(msgs, Messages(e)...)
		}
		return msgs
	}
	return []string{err.Error()}
}
