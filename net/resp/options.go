package resp

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/logging/logger"
	"github.com/stellrent/response/validator"
)

// Option sets a field on an intent under construction. Each constructor
// reads only the options relevant to its variant and ignores the rest.
type Option func(*options)

type options struct {
	status     int
	message    string
	data       any
	details    any
	errors     []FieldError
	validation error
	lang       []string
	logger     logrus.FieldLogger
}

func collect(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithStatus overrides the status of Data and Confirmation intents.
func WithStatus(status int) Option {
	return func(o *options) { o.status = status }
}

// WithMessage overrides the default message.
func WithMessage(msg string) Option {
	return func(o *options) { o.message = msg }
}

// WithData attaches an optional payload to a Created intent.
func WithData(data any) Option {
	return func(o *options) { o.data = data }
}

// WithDetails attaches free-form details.
func WithDetails(details any) Option {
	return func(o *options) { o.details = details }
}

// WithErrors attaches structured error records.
func WithErrors(errs ...FieldError) Option {
	return func(o *options) { o.errors = append(o.errors, errs...) }
}

// WithValidation derives BadRequest details from a validation failure.
// Derived details take precedence over WithDetails. A nil err is ignored.
func WithValidation(err error, lang ...string) Option {
	return func(o *options) {
		o.validation = err
		o.lang = lang
	}
}

// WithLogger sets the diagnostic sink. A nil logger selects the standard
// logger; a nil handle of a concrete type is replaced by the standard
// logger with a warning.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

func (o *options) resolveLogger() logrus.FieldLogger {
	if o.logger == nil {
		return nil
	}
	if isNilHandle(o.logger) {
		std := standardLogger()
		std.WithField("logger_type", fmt.Sprintf("%T", o.logger)).
			Warn("invalid logger handle, using the standard logger")
		return std
	}
	return o.logger
}

func (o *options) resolveDetails() any {
	if o.validation != nil {
		return validator.Violations(o.validation, o.lang...)
	}
	return o.details
}

func isNilHandle(l any) bool {
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func standardLogger() logrus.FieldLogger {
	return logger.StdLogger().Logger
}
