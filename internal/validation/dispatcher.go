package validation

import (
	"reflect"
	"regexp"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"go-vehicle-api/pkg/apierror"
)

// Rule checks one field against one validator tag. A field with several
// constraints gets one Rule per constraint so each failure is reported.
type Rule[T any] struct {
	Field   string
	Tag     string
	Message string
	Value   func(T) any
}

type RuleSet[T any] []Rule[T]

type Option func(*Dispatcher)

// WithClock overrides the time source used by date-relative rules.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// Dispatcher looks up the rule set registered for a payload's type and runs
// all of it. Registration happens at startup; Validate is safe for
// concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	validate *validator.Validate
	sets     map[reflect.Type]func(any) []string
	now      func() time.Time
}

var (
	wordsAndDigits = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)
	wordsOnly      = regexp.MustCompile(`^[a-zA-Z\s\-]+$`)
)

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		sets:     make(map[reflect.Type]func(any) []string),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	mustRegister(d.validate, "password_strength", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	mustRegister(d.validate, "name_chars", func(fl validator.FieldLevel) bool {
		return wordsAndDigits.MatchString(fl.Field().String())
	})
	mustRegister(d.validate, "brand_chars", func(fl validator.FieldLevel) bool {
		return wordsOnly.MatchString(fl.Field().String())
	})
	mustRegister(d.validate, "max_model_year", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(d.now().Year()+1)
	})

	return d
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Register binds rules to payloads of type T. Registering the same type
// twice replaces the earlier rule set.
func Register[T any](d *Dispatcher, rules RuleSet[T]) {
	run := func(payload any) []string {
		value := payload.(T)
		messages := make([]string, 0)
		for _, rule := range rules {
			if err := d.validate.Var(rule.Value(value), rule.Tag); err != nil {
				messages = append(messages, rule.Message)
			}
		}
		return messages
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sets[reflect.TypeFor[T]()] = run
}

// Validate runs the rule set registered for v's type. Payloads without a
// rule set pass. Failures come back as a single validation error listing
// every broken rule in declaration order.
func (d *Dispatcher) Validate(v any) error {
	if v == nil {
		return nil
	}

	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	d.mu.RLock()
	run, ok := d.sets[value.Type()]
	d.mu.RUnlock()
	if !ok {
		return nil
	}

	if messages := run(value.Interface()); len(messages) > 0 {
		return apierror.Validation(messages)
	}

	return nil
}

func (d *Dispatcher) Registered(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.sets[t]
	return ok
}

func isStrongPassword(value string) bool {
	var lower, upper, digit bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return lower && upper && digit
}
