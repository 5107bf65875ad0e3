package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultLanguage is used when no language, or an unknown one, is requested.
const DefaultLanguage = "en"

// Violation is a single field failure.
type Violation struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

var validate = newValidate("validate")

func newValidate(tagName string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(tagName)
	v.RegisterTagNameFunc(jsonName)
	return v
}

// jsonName reports a field under its JSON name so locations match the wire.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// errorMessages is a nested map of languages to validation tags to custom error messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"min":      "The field '%s' must be at least %s characters long.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"len":      "The field '%s' must be exactly %s characters long.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"gt":       "The field '%s' must be greater than %s.",
		"lt":       "The field '%s' must be less than %s.",
		"oneof":    "The field '%s' must be one of %s.",
		"uuid":     "The field '%s' must be a valid UUID.",
		"type":     "The field '%s' must be of type %s.",
	},
	"zh": {
		"required": "字段 '%s' 为必填项。",
		"email":    "字段 '%s' 必须是有效的电子邮箱地址。",
		"min":      "字段 '%s' 的长度不能少于 %s 个字符。",
		"max":      "字段 '%s' 的长度不能超过 %s 个字符。",
		"len":      "字段 '%s' 的长度必须为 %s 个字符。",
		"lte":      "字段 '%s' 的值必须小于或等于 %s。",
		"gte":      "字段 '%s' 的值必须大于或等于 %s。",
		"gt":       "字段 '%s' 的值必须大于 %s。",
		"lt":       "字段 '%s' 的值必须小于 %s。",
		"oneof":    "字段 '%s' 的值必须是 %s 之一。",
		"uuid":     "字段 '%s' 必须是有效的 UUID。",
		"type":     "字段 '%s' 的类型必须是 %s。",
	},
}

// Languages lists the languages messages are available in.
func Languages() []string {
	return []string{"en", "zh"}
}

// message builds a friendly message for tag, falling back to a generic one.
func message(field, tag, param string, lang ...string) string {
	msgLang := DefaultLanguage
	if len(lang) > 0 && lang[0] != "" {
		msgLang = lang[0]
	}
	msgs, ok := errorMessages[msgLang]
	if !ok {
		msgs = errorMessages[DefaultLanguage]
	}
	if msg, ok := msgs[tag]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, param)
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, tag)
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return withRoot(validate.Struct(s), s)
}

// structErrors keeps the validated type next to its validation errors so
// bracketed namespace segments can be told apart: slice and array indices
// become ints, map keys stay strings.
type structErrors struct {
	validator.ValidationErrors
	root reflect.Type
}

func (e *structErrors) Unwrap() error { return e.ValidationErrors }

func withRoot(err error, s any) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		return &structErrors{ValidationErrors: errs, root: reflect.TypeOf(s)}
	}
	return err
}

// Violations flattens err into ordered violations. Validation errors yield
// one violation per failed field; JSON type mismatches yield one violation
// at the mismatched field; any other error yields a single violation with
// an empty location carrying the error text. A nil error yields nil.
func Violations(err error, lang ...string) []Violation {
	if err == nil {
		return nil
	}

	var sliceErrs SliceErrors
	if errors.As(err, &sliceErrs) {
		out := make([]Violation, 0, len(sliceErrs))
		for i, elemErr := range sliceErrs {
			for _, v := range Violations(elemErr, lang...) {
				v.Loc = append([]any{i}, v.Loc...)
				out = append(out, v)
			}
		}
		return out
	}

	var root reflect.Type
	var structErrs *structErrors
	if errors.As(err, &structErrs) {
		root = structErrs.root
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]Violation, 0, len(validationErrs))
		for _, e := range validationErrs {
			out = append(out, Violation{
				Loc: location(e.Namespace(), e.StructNamespace(), root),
				Msg: message(e.Field(), e.Tag(), e.Param(), lang...),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		loc := make([]any, 0, 2)
		for _, name := range strings.Split(typeErr.Field, ".") {
			loc = append(loc, name)
		}
		return []Violation{{
			Loc: loc,
			Msg: message(fmt.Sprint(loc[len(loc)-1]), "type", typeErr.Type.String(), lang...),
		}}
	}

	return []Violation{{Loc: []any{}, Msg: err.Error()}}
}

// location converts a validator namespace such as
// "Person.addresses[0].street" into ["addresses", 0, "street"]. The leading
// segment names the validated root and is dropped. structNamespace is the
// same path under Go field names; walking it from root decides which
// bracketed segments index a slice or array. Without a root, numeric keys
// are taken as indices.
func location(namespace, structNamespace string, root reflect.Type) []any {
	segs := segments(namespace)
	idx := indices(structNamespace, root)

	loc := make([]any, 0, len(segs))
	for i, seg := range segs {
		switch {
		case i == 0:
			continue
		case !seg.key:
			loc = append(loc, seg.name)
		case i < len(idx):
			if n, err := strconv.Atoi(seg.name); err == nil && idx[i] {
				loc = append(loc, n)
			} else {
				loc = append(loc, seg.name)
			}
		default:
			if n, err := strconv.Atoi(seg.name); err == nil {
				loc = append(loc, n)
			} else {
				loc = append(loc, seg.name)
			}
		}
	}
	return loc
}

type segment struct {
	name string
	key  bool
}

// segments splits a namespace into field names and bracketed keys. A
// bracket closes at the first ']' followed by '.', '[' or the end, so keys
// may contain dots.
func segments(ns string) []segment {
	var out []segment
	for i := 0; i < len(ns); {
		switch ns[i] {
		case '.':
			i++
		case '[':
			j := i + 1
			for j < len(ns) && (ns[j] != ']' || (j+1 < len(ns) && ns[j+1] != '.' && ns[j+1] != '[')) {
				j++
			}
			out = append(out, segment{name: ns[i+1 : min(j, len(ns))], key: true})
			i = j + 1
		default:
			j := i
			for j < len(ns) && ns[j] != '.' && ns[j] != '[' {
				j++
			}
			out = append(out, segment{name: ns[i:j]})
			i = j
		}
	}
	return out
}

// indices walks structNamespace through root and reports, per segment,
// whether it indexes a slice or array. The result stops at the first
// segment the walk cannot resolve, such as one below an interface value.
func indices(structNamespace string, root reflect.Type) []bool {
	if root == nil {
		return nil
	}
	segs := segments(structNamespace)
	out := make([]bool, 0, len(segs))
	t := root
	for i, seg := range segs {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if i == 0 {
			out = append(out, false)
			continue
		}
		if seg.key {
			switch t.Kind() {
			case reflect.Slice, reflect.Array:
				out = append(out, true)
			case reflect.Map:
				out = append(out, false)
			default:
				return out
			}
			t = t.Elem()
			continue
		}
		if t.Kind() != reflect.Struct {
			return out
		}
		f, ok := t.FieldByName(seg.name)
		if !ok {
			return out
		}
		out = append(out, false)
		t = f.Type
	}
	return out
}
