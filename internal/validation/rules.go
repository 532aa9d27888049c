package validation

import (
	"errors"  // Error matching
	"fmt"     // Message formatting
	"math"    // Overflow clamp
	"strconv" // Amount parsing
	"strings" // Separator removal

	"card_transfer/internal/utils" // Digit and Luhn helpers
)

// Rule checks one normalized field value and returns its error messages, if any.
type Rule interface {
	Check(value string) []string
}

// Required fails on an empty value. Validate skips the remaining rules of a field
// when it fails.
type Required struct{}

func (Required) Check(value string) []string {
	if value == "" {
		return []string{"is required"}
	}
	return nil
}

// Length requires exactly N characters.
type Length struct {
	N int // Expected length
}

func (r Length) Check(value string) []string {
	if len([]rune(value)) != r.N {
		return []string{fmt.Sprintf("must be exactly %d digits", r.N)}
	}
	return nil
}

// Digits requires ASCII digits only.
type Digits struct{}

func (Digits) Check(value string) []string {
	if !utils.IsDigits(value) {
		return []string{"must contain digits only"}
	}
	return nil
}

// Luhn requires a valid Luhn checksum.
type Luhn struct{}

func (Luhn) Check(value string) []string {
	if !utils.LuhnValid(value) {
		return []string{"is not a valid card number"}
	}
	return nil
}

// Different requires the value to differ from another field's value.
type Different struct {
	Other      string // Normalized value of the other field
	OtherField string // Name used in the message
}

func (r Different) Check(value string) []string {
	if value == r.Other {
		return []string{"must be different from " + r.OtherField}
	}
	return nil
}

// AmountRange requires a whole number within [Min, Max].
type AmountRange struct {
	Min int64 // Smallest accepted amount
	Max int64 // Largest accepted amount
}

func (r AmountRange) Check(value string) []string {
	n, ok := ParseAmount(value)
	if !ok {
		return []string{"amount is invalid"} // Range messages make no sense here
	}

	var msgs []string
	if n < r.Min {
		msgs = append(msgs, "amount below "+groupThousands(r.Min)+" is not allowed")
	}
	if n > r.Max {
		msgs = append(msgs, "amount above "+groupThousands(r.Max)+" is not allowed")
	}
	return msgs
}

// amountSeparators are thousands separators dropped before parsing an amount
var amountSeparators = strings.NewReplacer(",", "", "٬", "")

// ParseAmount parses a normalized amount, ignoring thousands separators. Digit
// strings too large for int64 parse as math.MaxInt64 so they fail range checks
// instead of being reported as malformed.
func ParseAmount(value string) (int64, bool) {
	value = amountSeparators.Replace(value)
	if !utils.IsDigits(value) {
		return 0, false // Not a whole number
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64, true // Overflow is above any maximum
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',') // Separator before every third digit from the right
		}
		b.WriteRune(c)
	}
	return b.String()
}
