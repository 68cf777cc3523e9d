package pfn

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotDefined matches every domain-miss error via errors.Is.
var ErrNotDefined = errors.New("pfn: not defined")

// NotDefinedError reports an input outside a function's domain.
type NotDefinedError[A any] struct {
	Input A
	Func  uuid.UUID
	Name  string
}

func (e *NotDefinedError[A]) Error() string {
	return fmt.Sprintf("pfn: %s not defined at %v", describe(e.Func, e.Name), e.Input)
}

func (e *NotDefinedError[A]) Is(target error) bool {
	return target == ErrNotDefined
}

// AsNotDefined extracts the typed domain-miss error from err's tree.
func AsNotDefined[A any](err error) (*NotDefinedError[A], bool) {
	var nd *NotDefinedError[A]
	if errors.As(err, &nd) {
		return nd, true
	}
	return nil, false
}

func IsNotDefined(err error) bool {
	for _, e := range GetErrors(err) {
		if errors.Is(e, ErrNotDefined) {
			return true
		}
	}
	return false
}

// GetErrors flattens a joined error one level.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func describe(id uuid.UUID, name string) string {
	if name != "" {
		return name
	}
	if id == uuid.Nil {
		return "function"
	}
	return "function " + id.String()
}
