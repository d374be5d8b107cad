package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm translated sentinel",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped sentinel",
			err:  errors.Wrap(gorm.ErrDuplicatedKey, "failed to create user access"),
			want: true,
		},
		{
			name: "raw driver message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "user_access_pkey" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}
