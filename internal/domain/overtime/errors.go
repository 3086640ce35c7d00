package overtime

import "errors"

var ErrOvertimeNotFound = errors.New("overtime not found")
