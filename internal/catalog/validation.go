package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals reach the money validations as their exact string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("dgt", compareDecimal(decimal.Decimal.GreaterThan))
	_ = v.RegisterValidation("dgte", compareDecimal(decimal.Decimal.GreaterThanOrEqual))
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && fitsMoneyColumn(d)
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// maxMoney bounds the NUMERIC(12,2) price columns.
var maxMoney = decimal.New(1, 10)

// fitsMoneyColumn reports whether d is stored without rounding or overflow.
func fitsMoneyColumn(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2)) && d.Abs().LessThan(maxMoney)
}

func compareDecimal(cmp func(decimal.Decimal, decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		limit, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, limit)
	}
}

func (s *Service) validateProduct(p models.Product) error {
	err := s.validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Description: describe(fe)})
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "dgt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "dgte":
		return fe.Field() + " cannot be negative"
	case "money":
		return fe.Field() + moneyDescription
	}
	return fe.Field() + " is invalid"
}

const moneyDescription = " must have at most 2 decimal places and be below 10000000000"

// validateAmounts checks that the prices of p fit the store. Updates go
// through it instead of validateProduct, so a zero price is accepted.
func (s *Service) validateAmounts(p models.Product) error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"price", p.Price},
		{"purchase_cost", p.PurchaseCost},
	}

	var fields []FieldError
	for _, a := range amounts {
		if err := s.validate.Var(a.value, "money"); err != nil {
			fields = append(fields, FieldError{Field: a.field, Description: a.field + moneyDescription})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// checkPrices fails on the first product priced at 0.
func checkPrices(products []models.Product) error {
	for _, p := range products {
		if p.Price.IsZero() {
			return &ZeroPriceError{Product: p}
		}
	}
	return nil
}
