package swapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCharacter_BlueEyed(t *testing.T) {
	tests := []struct {
		eye  string
		want bool
	}{
		{"blue", true},
		{"blue-gray", true},
		{"brown", false},
		{"Blue", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.eye, func(t *testing.T) {
			assert.Equal(t, tt.want, Character{EyeColor: tt.eye}.BlueEyed())
		})
	}
}

func TestCharacter_CreatedAt(t *testing.T) {
	got, ok := Character{Created: "2014-12-09T13:50:51.644000Z"}.CreatedAt()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2014, 12, 9, 13, 50, 51, 644000000, time.UTC), got)

	_, ok = Character{}.CreatedAt()
	assert.False(t, ok)

	_, ok = Character{Created: "yesterday"}.CreatedAt()
	assert.False(t, ok)
}
