package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

func GenerateOTP() string {
	// Generate a 4-digit OTP covering the full 0000-9999 range
	var number [2]byte
	rand.Read(number[:])
	return fmt.Sprintf("%04d", binary.BigEndian.Uint16(number[:])%10000)
}

// GenerateUploadID builds a unique Cloudinary public ID for a user's upload.
func GenerateUploadID(userID uint) string {
	return fmt.Sprintf("user_%d_%s", userID, uuid.NewString())
}
