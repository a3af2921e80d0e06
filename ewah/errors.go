package ewah

import "errors"

// ErrBitSetOutOfOrder is returned by (*Bitmap).Set when pos is not
// strictly greater than every position previously passed to Set. Bits
// can only be appended in ascending order; there is no operation that
// inserts or clears a bit once written.
var ErrBitSetOutOfOrder = errors.New("ewah: bit position set out of order")
