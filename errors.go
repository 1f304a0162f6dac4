package stadium3d

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationInvalid is returned (wrapped) when an AngularSection or Layout breaks one of its invariants:
	// angles out of order or out of range, non-positive radii, inner radii not inside outer radii, and so on.
	ErrConfigurationInvalid = errors.New("configuration invalid")

	// ErrResourceUnavailable is returned (wrapped) when a texture can't be produced, either because the file is missing
	// or because it can't be decoded.
	ErrResourceUnavailable = errors.New("resource unavailable")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigurationInvalid, fmt.Sprintf(format, args...))
}
