package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr error
	}{
		{
			name: "valid post",
			post: &Post{
				Title:   "Valid Title",
				Content: "Some content",
			},
		},
		{
			name: "empty content is allowed",
			post: &Post{
				Title: "Title only",
			},
		},
		{
			name: "single character title",
			post: &Post{
				Title: "a",
			},
		},
		{
			name: "empty title",
			post: &Post{
				Title:   "",
				Content: "Content without a title",
			},
			wantErr: ErrTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
