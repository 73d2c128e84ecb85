package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadFolders(t *testing.T) {
	assert.Equal(t, "med_connecter_profiles", uploadFolders["avatar"])
	assert.Equal(t, "med_connecter_registrations", uploadFolders["registration"])

	_, ok := uploadFolders["summary"]
	assert.False(t, ok, "generated documents are not browser-uploadable")
}
