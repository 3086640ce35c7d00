package foodexpense

import "errors"

var ErrFoodExpenseNotFound = errors.New("food expense not found")
