// SPDX-License-Identifier: MIT

package montecarlo

import "errors"

// ErrInvalidArgument is returned for a non-positive trial count, step count
// or worker count, or for an empty container.
var ErrInvalidArgument = errors.New("montecarlo: invalid argument")
