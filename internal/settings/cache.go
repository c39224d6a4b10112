package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Entry[T any] struct {
	Expiration int64 `mapstructure:"expiration" json:"expiration"`
	Data       T     `mapstructure:"data" json:"data"`
}

var ErrExpired = errors.New("cache entry expired")

func cacheKey(key string) string {
	return "cache." + key
}

// SetCache stores value under key in the settings file. A ttl of 0 or less
// keeps the entry until it is replaced.
func SetCache[T any](key string, ttl int64, value T) {
	entry := Entry[T]{Data: value}
	if ttl > 0 {
		entry.Expiration = time.Now().Unix() + ttl
	}
	encoded := map[string]interface{}{}
	if err := mapstructure.Decode(entry, &encoded); err != nil {
		warn(err)
		return
	}
	viper.Set(cacheKey(key), encoded)
	if err := viper.WriteConfig(); err != nil {
		warn(err)
	}
}

func GetCache[T any](key string) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if value == nil {
		return entry.Data, fmt.Errorf("no cache data for %s", key)
	}
	if err := mapstructure.WeakDecode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration < time.Now().Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

// InvalidateCache replaces the entry under key with an expired one
func InvalidateCache(key string) {
	viper.Set(cacheKey(key), map[string]interface{}{"expiration": 1})
	if err := viper.WriteConfig(); err != nil {
		warn(err)
	}
}
