package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("user-1", "Me.PNG", "/users/", AllowImage...)
	assert.NoError(t, err)
	assert.Equal(t, "users/user-1.png", key)

	_, err = ObjectKey("user-1", "cv.pdf", "users", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	key, err = ObjectKey("doc", "cv.pdf", "docs")
	assert.NoError(t, err)
	assert.Equal(t, "docs/doc.pdf", key)
}

func TestGetPublicLinkKey(t *testing.T) {
	s := &awsS3{bucket: "red-cross", region: "eu-central-1"}
	assert.Equal(t, "https://red-cross.s3.eu-central-1.amazonaws.com/centers/c.png", s.GetPublicLinkKey("centers/c.png"))
}
