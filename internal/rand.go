package internal

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// UniformUint64 draws a uniformly distributed value from the inclusive
// range [0, upper] using rejection sampling, so no draw is biased toward
// the low end of the range.
func UniformUint64(reader io.Reader, upper uint64) (uint64, error) {
	var buf [8]byte
	if upper == math.MaxUint64 {
		if _, err := io.ReadFull(reader, buf[:]); err != nil {
			return 0, errors.Wrap(err, "reading random bytes")
		}
		return binary.BigEndian.Uint64(buf[:]), nil
	}

	n := upper + 1
	// 2^64 mod n values at the top of the uint64 range would skew the
	// distribution; redraw when one comes up.
	excess := (math.MaxUint64%n + 1) % n
	limit := math.MaxUint64 - excess
	for {
		if _, err := io.ReadFull(reader, buf[:]); err != nil {
			return 0, errors.Wrap(err, "reading random bytes")
		}
		draw := binary.BigEndian.Uint64(buf[:])
		if draw <= limit {
			return draw % n, nil
		}
	}
}
