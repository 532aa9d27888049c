package validation

import (
	"card_transfer/internal/domain" // Importing domain models
	"card_transfer/internal/utils"  // Digit normalization
)

// Amount bounds in base currency units, both inclusive
const (
	MinAmount int64 = 1_000      // Smallest transfer
	MaxAmount int64 = 10_000_000 // Largest transfer
)

// Field is a named value and the rules that apply to it.
type Field struct {
	Name  string // Key in ValidationError.Fields
	Value string // Normalized input
	Rules []Rule // Checked in order
}

// Validate runs every field's rules and collects all failures. A field that fails
// Required reports nothing else. Returns nil when all fields pass.
func Validate(fields ...Field) *domain.ValidationError {
	errs := make(map[string][]string)
	for _, f := range fields {
		for _, rule := range f.Rules {
			msgs := rule.Check(f.Value)
			if len(msgs) == 0 {
				continue
			}
			errs[f.Name] = append(errs[f.Name], msgs...)
			if _, ok := rule.(Required); ok {
				break // Empty value, nothing else to report
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: errs}
}

// Transfer is a validated transfer input.
type Transfer struct {
	Source      string // Normalized source card number
	Destination string // Normalized destination card number
	Amount      int64  // Amount without the fee
}

// ValidateTransfer normalizes the raw transfer fields and validates them together.
func ValidateTransfer(source, destination, amount string) (Transfer, error) {
	source = utils.NormalizeDigits(source)           // Localized digits to ASCII
	destination = utils.NormalizeDigits(destination) // Localized digits to ASCII
	amount = utils.NormalizeDigits(amount)           // Localized digits to ASCII

	cardRules := []Rule{Required{}, Length{N: domain.CardNumberLength}, Digits{}, Luhn{}}
	destinationRules := append(append([]Rule{}, cardRules...), Different{Other: source, OtherField: "source"})
	amountRules := []Rule{Required{}, AmountRange{Min: MinAmount, Max: MaxAmount}}

	if verr := Validate(
		Field{Name: "source", Value: source, Rules: cardRules},
		Field{Name: "destination", Value: destination, Rules: destinationRules},
		Field{Name: "amount", Value: amount, Rules: amountRules},
	); verr != nil {
		return Transfer{}, verr
	}

	n, _ := ParseAmount(amount) // Already checked by AmountRange
	return Transfer{Source: source, Destination: destination, Amount: n}, nil
}
