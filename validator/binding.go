package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SliceErrors holds per-element failures of a validated slice, indexed by
// element position. Valid elements have a nil entry.
type SliceErrors []error

func (e SliceErrors) Error() string {
	var b strings.Builder
	for i, err := range e {
		if err == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d]: %s", i, err.Error())
	}
	return b.String()
}

type bindingValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*bindingValidator)(nil)

// Binding returns a gin struct validator that checks `binding` tags and
// reports fields under their JSON names, so ShouldBind failures flatten
// with wire locations. Install it with binding.Validator = validator.Binding().
func Binding() binding.StructValidator {
	return &bindingValidator{}
}

func (v *bindingValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = newValidate("binding")
	})
}

// ValidateStruct validates structs, pointers to structs and slices of them.
func (v *bindingValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		v.lazyinit()
		return withRoot(v.validate.Struct(obj), obj)
	case reflect.Slice, reflect.Array:
		count := value.Len()
		errs := make(SliceErrors, count)
		failed := false
		for i := 0; i < count; i++ {
			if err := v.ValidateStruct(value.Index(i).Interface()); err != nil {
				errs[i] = err
				failed = true
			}
		}
		if failed {
			return errs
		}
		return nil
	default:
		return nil
	}
}

// Engine returns the underlying *validator.Validate.
func (v *bindingValidator) Engine() any {
	v.lazyinit()
	return v.validate
}
