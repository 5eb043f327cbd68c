package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	orderNumberPrefix    = "ORD-"
	orderNumberDayLayout = "20060102"
	orderNumberDigits    = 4
	maxDailyOrderNumber  = 9999
)

// ErrOrderNumberExhausted is returned when a day already holds the maximum sequence.
var ErrOrderNumberExhausted = errors.New("daily order number sequence exhausted")

// OrderNumberPrefix returns the day-scoped prefix for t in UTC, e.g. "ORD-20250205-".
func OrderNumberPrefix(t time.Time) string {
	return orderNumberPrefix + t.UTC().Format(orderNumberDayLayout) + "-"
}

// NextOrderNumber derives the number following last for the day of t.
// last is the highest number already issued with the same prefix, or empty.
func NextOrderNumber(t time.Time, last string) (string, error) {
	prefix := OrderNumberPrefix(t)

	next := 1
	if last != "" {
		if !strings.HasPrefix(last, prefix) {
			return "", errors.Errorf("order number %q does not belong to prefix %q", last, prefix)
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", errors.Wrapf(err, "malformed order number %q", last)
		}
		next = seq + 1
	}

	if next > maxDailyOrderNumber {
		return "", ErrOrderNumberExhausted
	}

	return fmt.Sprintf("%s%0*d", prefix, orderNumberDigits, next), nil
}
