package validation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card_transfer/internal/domain"
	"card_transfer/internal/validation"
)

const (
	sourceCard      = "4111111111111111"
	destinationCard = "5500000000000004"
)

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected *domain.ValidationError, got %v", err)
	return verr.Fields
}

func TestValidateTransfer_Success(t *testing.T) {
	got, err := validation.ValidateTransfer(sourceCard, destinationCard, "5000")

	require.NoError(t, err)
	assert.Equal(t, validation.Transfer{Source: sourceCard, Destination: destinationCard, Amount: 5000}, got)
}

func TestValidateTransfer_LocalizedInput(t *testing.T) {
	got, err := validation.ValidateTransfer("۴۱۱۱۱۱۱۱۱۱۱۱۱۱۱۱", " ٥٥٠٠٠٠٠٠٠٠٠٠٠٠٠٤ ", "۱۰,۰۰۰")

	require.NoError(t, err)
	assert.Equal(t, sourceCard, got.Source)
	assert.Equal(t, destinationCard, got.Destination)
	assert.Equal(t, int64(10000), got.Amount)
}

func TestValidateTransfer_AmountBounds(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		wantErr string
	}{
		{name: "lower bound", amount: "1000"},
		{name: "upper bound", amount: "10000000"},
		{name: "below lower bound", amount: "999", wantErr: "amount below 1,000 is not allowed"},
		{name: "above upper bound", amount: "10000001", wantErr: "amount above 10,000,000 is not allowed"},
		{name: "beyond int64", amount: "99999999999999999999", wantErr: "amount above 10,000,000 is not allowed"},
		{name: "grouped beyond int64", amount: "99,999,999,999,999,999,999", wantErr: "amount above 10,000,000 is not allowed"},
		{name: "not numeric", amount: "12abc", wantErr: "amount is invalid"},
		{name: "negative", amount: "-5000", wantErr: "amount is invalid"},
		{name: "decimal", amount: "1000.5", wantErr: "amount is invalid"},
		{name: "empty", amount: "", wantErr: "is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.ValidateTransfer(sourceCard, destinationCard, tc.amount)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			fields := fieldErrors(t, err)
			assert.Equal(t, []string{tc.wantErr}, fields["amount"])
			assert.NotContains(t, fields, "source")
			assert.NotContains(t, fields, "destination")
		})
	}
}

func TestValidateTransfer_CardNumbers(t *testing.T) {
	testCases := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "too short", source: "411111111111111", want: []string{"must be exactly 16 digits", "is not a valid card number"}},
		{name: "bad checksum", source: "4111111111111112", want: []string{"is not a valid card number"}},
		{name: "letters", source: "41111111111111a1", want: []string{"must contain digits only", "is not a valid card number"}},
		{name: "missing", source: "", want: []string{"is required"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.ValidateTransfer(tc.source, destinationCard, "5000")
			assert.Equal(t, tc.want, fieldErrors(t, err)["source"])
		})
	}
}

func TestValidateTransfer_SameCard(t *testing.T) {
	_, err := validation.ValidateTransfer(sourceCard, "۴۱۱۱۱۱۱۱۱۱۱۱۱۱۱۱", "5000")

	fields := fieldErrors(t, err)
	assert.Equal(t, []string{"must be different from source"}, fields["destination"])
	assert.NotContains(t, fields, "source")
}

func TestValidateTransfer_CollectsAllFields(t *testing.T) {
	_, err := validation.ValidateTransfer("123", "", "999")

	fields := fieldErrors(t, err)
	assert.Len(t, fields, 3)
	assert.Equal(t, []string{"is required"}, fields["destination"])
	assert.Contains(t, fields["source"], "must be exactly 16 digits")
	assert.Equal(t, []string{"amount below 1,000 is not allowed"}, fields["amount"])
}

func TestValidate_RequiredStopsField(t *testing.T) {
	verr := validation.Validate(validation.Field{
		Name:  "source",
		Value: "",
		Rules: []validation.Rule{validation.Required{}, validation.Length{N: 16}, validation.Digits{}},
	})

	require.NotNil(t, verr)
	assert.Equal(t, map[string][]string{"source": {"is required"}}, verr.Fields)
}

func TestValidate_NoErrors(t *testing.T) {
	verr := validation.Validate(validation.Field{Name: "amount", Value: "1500", Rules: []validation.Rule{validation.AmountRange{Min: 1000, Max: 2000}}})
	assert.Nil(t, verr)
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		value string
		want  int64
		ok    bool
	}{
		{value: "5000", want: 5000, ok: true},
		{value: "1,500,000", want: 1_500_000, ok: true},
		{value: "9223372036854775807", want: math.MaxInt64, ok: true},
		{value: "9223372036854775808", want: math.MaxInt64, ok: true},
		{value: "-1", ok: false},
		{value: "1e6", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			got, ok := validation.ParseAmount(tc.value)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
