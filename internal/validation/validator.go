package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"

	"floreria-be/internal/store"
)

// New returns a configured validator with the custom rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterValidation("hhmm", func(fl validatorv10.FieldLevel) bool {
		_, err := store.ParseClock(fl.Field().String())
		return err == nil
	})

	// Catch a total that disagrees with the lines before the request reaches
	// the order flow; the service re-checks regardless.
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	sum := 0
	for _, it := range req.Items {
		sum += it.UnitPrice * it.Quantity
	}
	if sum != req.Total {
		sl.ReportError(req.Total, "total", "Total", "total_match_items",
			fmt.Sprintf("items sum %d != total %d", sum, req.Total))
	}
}
