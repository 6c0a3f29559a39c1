package server_test

import (
	"testing"

	"photo-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidRemote(t *testing.T) {
	valid := map[string]bool{
		server.RemoteGoogle: true,
		server.RemoteS3:     true,
		"dropbox":           false,
		"":                  false,
	}

	for remote, want := range valid {
		c := server.Config{Remote: remote}
		assert.Equal(t, want, c.IsValidRemote(), "remote %q", remote)
	}
}
