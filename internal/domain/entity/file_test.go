package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileDetail_StorageID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want int64
	}{
		{name: "numeric", id: "10971", want: 10971},
		{name: "zero", id: "0", want: 0},
		{name: "non numeric collapses to zero", id: "abc-123", want: 0},
		{name: "empty collapses to zero", id: "", want: 0},
		{name: "large", id: "9223372036854775807", want: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &FileDetail{ID: tt.id}
			assert.Equal(t, tt.want, file.StorageID())
		})
	}
}
