package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func otpKey(email string) string {
	return "otp:" + email
}

// StoreOTP caches a registration OTP for the given email with a TTL.
func StoreOTP(email, otp string, ttl time.Duration) error {
	return Client.Set(Ctx, otpKey(email), otp, ttl).Err()
}

// GetOTP returns the cached OTP for the email, or an error if expired.
func GetOTP(email string) (string, error) {
	return Client.Get(Ctx, otpKey(email)).Result()
}

// DeleteOTP removes a consumed OTP.
func DeleteOTP(email string) error {
	return Client.Del(Ctx, otpKey(email)).Err()
}
