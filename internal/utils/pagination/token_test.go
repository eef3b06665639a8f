package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard values
	effectiveDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 15, 10, 30, 0, 123456789, time.UTC)
	token := EncodeToken(effectiveDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreated, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, effectiveDate, decodedDate, "Effective date should match after decode")
	assert.Equal(t, createdAt, decodedCreated, "Created-at should match after decode")

	// Test case 2: Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedDate, decodedCreated, err = DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero times should not return an error")
	assert.Equal(t, zeroTime, decodedDate)
	assert.Equal(t, zeroTime, decodedCreated)

	// Test case 3: Nanosecond precision survives the round trip
	now := time.Now().UTC()
	nowToken := EncodeToken(now, now)
	decodedDate, decodedCreated, err = DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedDate), "Effective date should match after decode")
	assert.True(t, now.Equal(decodedCreated), "Created-at should match after decode")
}

// Entries sharing an effective date are distinguished by the created_at half
// of the cursor. Tokens for two same-date rows must decode to different
// created_at values so the follow-up page can resume after the right row.
func TestEncodeToken_SameDateDifferentCreation(t *testing.T) {
	effectiveDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	firstCreated := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	secondCreated := time.Date(2025, 5, 15, 9, 0, 1, 0, time.UTC)

	firstToken := EncodeToken(effectiveDate, firstCreated)
	secondToken := EncodeToken(effectiveDate, secondCreated)
	assert.NotEqual(t, firstToken, secondToken, "Same-date entries must produce distinct cursors")

	date1, created1, err := DecodeToken(firstToken)
	assert.NoError(t, err)
	date2, created2, err := DecodeToken(secondToken)
	assert.NoError(t, err)

	assert.Equal(t, date1, date2, "Both cursors share the effective date")
	assert.Equal(t, firstCreated, created1)
	assert.Equal(t, secondCreated, created2)
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Valid base64 but no separator
	noSeparator := "bm90YWRhdGU=" // "notadate"
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err, "Should return an error when the separator is missing")
	assert.Contains(t, err.Error(), "split", "Error should mention the split step")

	// Separator present but first half is not a date
	badDate := "bm90YWRhdGV8MjAyNS0wNS0xNVQwMDowMDowMFo=" // "notadate|2025-05-15T00:00:00Z"
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err, "Should return an error for an invalid effective date")
	assert.Contains(t, err.Error(), "effective date parse", "Error should mention the effective date")

	// Separator present but second half is not a date
	badCreated := "MjAyNS0wNS0xNVQwMDowMDowMFp8bm90YWRhdGU=" // "2025-05-15T00:00:00Z|notadate"
	_, _, err = DecodeToken(badCreated)
	assert.Error(t, err, "Should return an error for an invalid created_at")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention created_at")
}
