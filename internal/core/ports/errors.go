package ports

import "errors"

// Classified repository error kinds. Adapters translate driver-level
// failures into these sentinels so callers can branch with errors.Is instead
// of matching on error text.
//
// Differentiated handling:
//   - ErrAlreadyCompleted / ErrConflict: another actor finished or changed
//     the order; refresh local state, do not retry blindly
//   - ErrNetwork: transient; the validated transition remains valid to retry
//   - ErrPermissionDenied: fatal for the current attempt; requires
//     re-authorization, not a retry
var (
	ErrAlreadyCompleted = errors.New("order already completed")
	ErrConflict         = errors.New("order changed by another actor")
	ErrPermissionDenied = errors.New("driver not authorized for this order")
	ErrNetwork          = errors.New("network failure during commit")
)
