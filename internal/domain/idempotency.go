package domain

import "time"

// Idempotency stores the response produced for a POST carrying an
// Idempotency-Key, keyed by (key, method, path). A retry with the same key
// before ExpiresAt is answered from this record without repeating the insert,
// provided its body hashes to RequestHash.
type Idempotency struct {
	ID     string `gorm:"type:char(36);primaryKey"`
	Key    string `gorm:"type:varchar(200);not null;uniqueIndex:ux_idem_key_method_path,priority:1"`
	Method string `gorm:"type:varchar(16);not null;uniqueIndex:ux_idem_key_method_path,priority:2"`
	Path   string `gorm:"type:varchar(512);not null;uniqueIndex:ux_idem_key_method_path,priority:3"`

	// RequestHash is the hex SHA-256 of the request body.
	RequestHash string    `gorm:"type:char(64);not null;default:''"`
	Status      int       `gorm:"not null"`
	Body        []byte    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency_keys" }
