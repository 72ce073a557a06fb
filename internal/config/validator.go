package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks field constraints and the cross-field rules struct tags cannot express.
func (c *Config) Validate() error {
	if c == nil {
		return menuerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if c.Canvas.Width-2*(c.Canvas.OuterPadding+2*c.Canvas.InnerPadding) <= 0 {
		return menuerrors.NewValidationError("canvas.outer_padding", "paddings leave no room for text", nil)
	}
	if c.QR.Text != "" && c.QR.Size+c.Canvas.InnerPadding > min(c.Canvas.Width, c.Canvas.Height) {
		return menuerrors.NewValidationError("qr.size", fmt.Sprintf("badge of %dpx does not fit the canvas", c.QR.Size), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return menuerrors.NewValidationError(field, msg, err)
	}
	return menuerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
