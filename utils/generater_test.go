package utils_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laborlink/laborlink-backend/utils"
)

func TestGenerateOTP_SpansFullFourDigitRange(t *testing.T) {
	sawLargeCode := false
	for i := 0; i < 300; i++ {
		otp := utils.GenerateOTP()
		require.Len(t, otp, 4)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 10000)

		// A generator drawing from a single byte never exceeds 255
		if n > 255 {
			sawLargeCode = true
		}
	}
	require.True(t, sawLargeCode, "expected at least one code above 255 in 300 draws")
}

func TestGenerateUploadID_Unique(t *testing.T) {
	a := utils.GenerateUploadID(7)
	b := utils.GenerateUploadID(7)
	require.True(t, strings.HasPrefix(a, "user_7_"))
	require.NotEqual(t, a, b)
}
