package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CustomDict wraps a Redis client to store words the user taught the engine.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a new CustomDict with the provided Redis client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client, key: "user_dict"}
}

// Add inserts a word into the user dictionary.
func (cd *CustomDict) Add(word string) error {
	return cd.client.SAdd(context.Background(), cd.key, word).Err()
}

// Remove deletes a word from the user dictionary.
func (cd *CustomDict) Remove(word string) error {
	return cd.client.SRem(context.Background(), cd.key, word).Err()
}

// All returns every word stored in the user dictionary.
func (cd *CustomDict) All() ([]string, error) {
	return cd.client.SMembers(context.Background(), cd.key).Result()
}

// Count returns the number of stored words.
func (cd *CustomDict) Count() (int64, error) {
	return cd.client.SCard(context.Background(), cd.key).Result()
}
