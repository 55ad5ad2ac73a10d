package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	id := "6f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8"

	token := EncodeToken(createdAt, id)
	gotTime, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := "MjAyNS0wMy0xNA==" // "2025-03-14", no pipe
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("Z2FyYmFnZXxzb21lLWlk") // "garbage|some-id"
	assert.Error(t, err)
}
