package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound indicates the requested key does not exist
var ErrKeyNotFound = errors.New("key not found")

// Client represents a Redis client with connection management
type Client struct {
	client *redis.Client
	config *Config
}

// Config holds Redis client configuration
type Config struct {
	Host                string
	Port                int
	DB                  int
	Password            string
	MaxConnections      int
	ConnTimeout         time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	HealthCheckInterval time.Duration
}

// DefaultConfig returns default Redis configuration
func DefaultConfig() *Config {
	return &Config{
		Host:                "localhost",
		Port:                6379,
		DB:                  0,
		Password:            "",
		MaxConnections:      100,
		ConnTimeout:         2 * time.Second,
		ReadTimeout:         3 * time.Second,
		WriteTimeout:        3 * time.Second,
		HealthCheckInterval: 15 * time.Second,
	}
}

// New creates a new Redis client with the given configuration
func New(config *Config) *Client {
	c := &Client{config: config}
	c.initClient()
	return c
}

// initClient initializes the Redis client
func (c *Client) initClient() {
	c.client = redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		Password:        c.config.Password,
		DB:              c.config.DB,
		PoolSize:        c.config.MaxConnections,
		MinIdleConns:    10,
		DialTimeout:     c.config.ConnTimeout,
		ReadTimeout:     c.config.ReadTimeout,
		WriteTimeout:    c.config.WriteTimeout,
		PoolTimeout:     4 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
	})
}

// Ping checks the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves a string value by key
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Set stores a value with the given expiration
func (c *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// SetNX stores a value only if the key does not already exist.
// Returns true when the value was set.
func (c *Client) SetNX(ctx context.Context, key string, value any, expiration time.Duration) (bool, error) {
	return c.client.SetNX(ctx, key, value, expiration).Result()
}

// Incr atomically increments the integer value of a key and
// returns the new value
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// Expire sets a new expiration on an existing key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, expiration).Result()
}

// TTL returns the remaining time to live of a key
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}

// Delete removes a key. Returns true if the key existed.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	return c.client.Close()
}
