package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_StripsScheme(t *testing.T) {
	for _, endpoint := range []string{"localhost:9000", "http://localhost:9000", "https://localhost:9000"} {
		t.Run(endpoint, func(t *testing.T) {
			client, err := NewClient(Config{
				Endpoint:  endpoint,
				AccessKey: "key",
				SecretKey: "secret",
			})
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
