package clipboard

import "errors"

var errEmptyImage = errors.New("clipboard: nothing to copy")
