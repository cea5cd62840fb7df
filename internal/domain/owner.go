package domain

// OwnerClaims identifies the holder of a channel owner token
type OwnerClaims struct {
	ChannelID string `json:"channel_id"`
	Issuer    string `json:"iss"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp,omitempty"`
}
