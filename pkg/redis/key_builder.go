package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	switch environment {
	case "development", "staging":
		prefix = "staging"
	case "test":
		prefix = "test"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeySubscriberInbox(subscriberID string) string {
	return kb.BuildKey(fmt.Sprintf(KeySubscriberInbox, subscriberID))
}

func (kb *KeyBuilder) KeyDocument(name string) string {
	return kb.BuildKey(fmt.Sprintf(KeyDocument, name))
}

func (kb *KeyBuilder) KeyCart(cartID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyCart, cartID))
}
