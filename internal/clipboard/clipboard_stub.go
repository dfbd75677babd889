//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"image"
)

var errUnsupported = fmt.Errorf("clipboard operations are not supported on this platform")

// WriteImage is unsupported on this platform.
func WriteImage(image.Image) error { return errUnsupported }

