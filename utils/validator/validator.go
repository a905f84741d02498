package validatorx

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/buyer-leads/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// enumTags maps a custom validation tag to the values it accepts.
var enumTags = map[string][]string{
	"city":         constant.Cities,
	"propertytype": constant.PropertyTypes,
	"bhk":          constant.BHKs,
	"purpose":      constant.Purposes,
	"timeline":     constant.Timelines,
	"source":       constant.Sources,
	"buyerstatus":  constant.BuyerStatuses,
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}

	nv := gpvalidator.New()
	nv.RegisterTagNameFunc(jsonFieldName)
	_ = nv.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	for tag, values := range enumTags {
		_ = nv.RegisterValidation(tag, oneOf(values))
	}
	v = nv
}

func get() *gpvalidator.Validate {
	mut.Lock()
	nv := v
	mut.Unlock()
	if nv != nil {
		return nv
	}
	Init()
	return v
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}

// ValidateStructExcept validates a struct skipping the named struct fields.
func ValidateStructExcept(s interface{}, fields ...string) error {
	return get().StructExcept(s, fields...)
}

func oneOf(values []string) gpvalidator.Func {
	allowed := make(map[string]struct{}, len(values))
	for _, val := range values {
		allowed[val] = struct{}{}
	}
	return func(fl gpvalidator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
