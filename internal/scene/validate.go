package scene

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report document key names rather than Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate a Dimension as its numeric value. Unset dimensions read as 0.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(Dimension)
		if !ok {
			return nil
		}
		return d.Value
	}, Dimension{})

	_ = validate.RegisterValidation("align", validateAlign)
	_ = validate.RegisterValidation("thickness", validateThickness)
}

func validateAlign(fl validator.FieldLevel) bool {
	_, ok := layout.ParseAlign(fl.Field().String())
	return ok
}

func validateThickness(fl validator.FieldLevel) bool {
	switch fl.Field().Len() {
	case 0, 1, 2, 4:
		return true
	default:
		return false
	}
}

// Validate checks value ranges, alignment and policy names across the whole
// tree.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate scene: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid scene: %s", strings.Join(msgs, "; "))
}
