package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card_transfer/internal/db"
	"card_transfer/internal/utils"
)

func TestGenerateCardNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number, err := db.GenerateCardNumber("603799")
		require.NoError(t, err)
		assert.Len(t, number, 16)
		assert.True(t, len(number) > 6 && number[:6] == "603799")
		assert.True(t, utils.LuhnValid(number), number)
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateCardNumber_InvalidBIN(t *testing.T) {
	for _, bin := range []string{"60a799", "", "6037997512345678"} {
		_, err := db.GenerateCardNumber(bin)
		assert.Error(t, err, bin)
	}
}
