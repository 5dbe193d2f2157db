package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line", "Buy milk", "Buy milk"},
		{"multi line", "Buy milk\nDetails about the milk", "Buy milk"},
		{"leading whitespace", "  \n\nBuy milk\nrest", "Buy milk"},
		{"trailing spaces on first line", "Buy milk   \nrest", "Buy milk"},
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.content))
		})
	}
}

func TestNote_AttachmentKey(t *testing.T) {
	key := "private/1/1700000000-cat.png"
	withKey := Note{Attachment: &key}
	assert.Equal(t, key, withKey.AttachmentKey())

	var bare Note
	assert.Empty(t, bare.AttachmentKey())
}
