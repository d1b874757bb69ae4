package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		wantValid   bool
		wantE164    string
	}{
		{
			name:      "German landline with national prefix",
			phone:     "030 12345678",
			wantValid: true,
			wantE164:  "+493012345678",
		},
		{
			name:      "German landline international format",
			phone:     "+49 30 12345678",
			wantValid: true,
			wantE164:  "+493012345678",
		},
		{
			name:      "German mobile",
			phone:     "0171 2345678",
			wantValid: true,
			wantE164:  "+491712345678",
		},
		{
			name:        "Austrian number with explicit region",
			phone:       "01 5266410",
			countryCode: "AT",
			wantValid:   true,
			wantE164:    "+4315266410",
		},
		{
			name:      "too short",
			phone:     "123",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidatePhone(tt.phone, tt.countryCode)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.IsValid)
			if tt.wantValid {
				assert.Equal(t, tt.wantE164, result.E164Format)
			}
		})
	}
}

func TestValidatePhoneEmpty(t *testing.T) {
	_, err := ValidatePhone("", "")
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	e164, err := NormalizePhone("030 / 123 456 78", "")
	require.NoError(t, err)
	assert.Equal(t, "+493012345678", e164)

	// Already normalized input is a no-op.
	e164, err = NormalizePhone("+493012345678", "")
	require.NoError(t, err)
	assert.Equal(t, "+493012345678", e164)

	// Invalid numbers are rejected, not guessed at.
	_, err = NormalizePhone("123", "")
	assert.Error(t, err)

	_, err = NormalizePhone("not a number", "")
	assert.Error(t, err)
}

func TestGetPhoneType(t *testing.T) {
	pt, err := GetPhoneType("0171 2345678", "DE")
	require.NoError(t, err)
	assert.Equal(t, TypeMobile, pt)

	pt, err = GetPhoneType("030 12345678", "DE")
	require.NoError(t, err)
	assert.Contains(t, []PhoneType{TypeFixedLine, TypeFixedLineOrMobile}, pt)
}
