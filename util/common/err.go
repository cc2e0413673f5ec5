package common

import (
	"errors"
	"fmt"
)

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	var errorsText []string
	for _, err := range errs {
		if err != nil {
			errorsText = append(errorsText, err.Error())
		}
	}
	if len(errorsText) == 0 {
		return nil
	}
	return errors.New(fmt.Sprint(errorsText))
}
