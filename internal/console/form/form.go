// Package form validates console input before it is sent to the API.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps a field key to its message. Keys match the API's field names.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Fields returns the keys in a stable order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// First returns one message for a toast, preferring the earliest field in order.
func (e Errors) First(order ...string) string {
	for _, field := range order {
		if msg, ok := e[field]; ok {
			return msg
		}
	}
	if fields := e.Fields(); len(fields) > 0 {
		return e[fields[0]]
	}
	return ""
}

// Merge copies server-side field messages over the client-side ones.
func (e Errors) Merge(fields map[string]string) Errors {
	if e == nil {
		e = Errors{}
	}
	for field, msg := range fields {
		e[field] = msg
	}
	return e
}

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("amount_gt0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	_ = v.RegisterValidation("amount_gte0", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})

	return v
}

// check runs the struct tags and resolves messages by "field.tag", then "field".
func check(form interface{}, messages map[string]string) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"form": err.Error()}
	}

	errs := Errors{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			errs[field] = msg
		} else if msg, ok := messages[field]; ok {
			errs[field] = msg
		} else {
			errs[field] = fe.Error()
		}
	}
	return errs
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mustDecimal(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
