package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "empty", dsn: "", want: ""},
		{name: "url with password", dsn: "postgres://app:s3cret@db:5432/units?sslmode=disable", want: "postgres://app:xxxxx@db:5432/units?sslmode=disable"},
		{name: "url without password", dsn: "postgres://app@db/units", want: "postgres://app@db/units"},
		{name: "url with password query", dsn: "postgres://db/units?password=s3cret", want: "postgres://db/units?password=xxxxx"},
		{name: "key value", dsn: "host=db user=app password=s3cret dbname=units", want: "host=db user=app password=xxxxx dbname=units"},
		{name: "key value quoted", dsn: "host=db password='my secret' dbname=units", want: "host=db password=xxxxx dbname=units"},
		{name: "sqlite file", dsn: "file:units.db?cache=shared", want: "file:units.db?cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactDSN(tt.dsn)

			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "s3cret")
		})
	}
}

func TestStructuredConfig_Redacted_LeavesOriginalIntact(t *testing.T) {
	cfg := StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://app:s3cret@db/units"}}}

	redacted := cfg.Redacted()

	assert.Equal(t, "postgres://app:xxxxx@db/units", redacted.Storage.DB.DSN)
	assert.Equal(t, "postgres://app:s3cret@db/units", cfg.Storage.DB.DSN)
}
