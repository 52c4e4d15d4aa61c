package models

import (
	"encoding/json"
	"time"
)

// Layout is a saved table scene: the full JSON scene description plus
// bookkeeping. The scene column is jsonb and round-trips through
// json.RawMessage untouched.
type Layout struct {
	ID        int             `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Scene     json.RawMessage `db:"scene" json:"scene"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
