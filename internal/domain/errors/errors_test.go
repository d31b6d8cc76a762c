package errors

import (
	"testing"

	"github.com/bossoq/flood-disaster-crawl/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: ExitGeneric},
		{name: "config", err: ErrConfigLoad, want: ExitConfig},
		{name: "fetch", err: ErrRemoteFetch, want: ExitFetch},
		{name: "malformed shares fetch code", err: ErrMalformedResponse, want: ExitFetch},
		{name: "storage", err: ErrStorage, want: ExitStorage},
		{name: "auth", err: ErrTokenRefresh, want: ExitAuth},
		{name: "notify", err: ErrNotify, want: ExitNotify},
		{name: "wrapped keeps code", err: ErrTokenRefresh.WrapMessage("refreshing before notify"), want: ExitAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrNotify.WithDetails("chat 19:meeting")

	assert.Equal(t, ErrNotify.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrNotify.ExitCode(), detailed.ExitCode())
	assert.Equal(t, "chat 19:meeting", detailed.Details())
	// The original value stays untouched.
	assert.Empty(t, ErrNotify.Details())
}
