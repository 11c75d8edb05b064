package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestJoinReasons(t *testing.T) {
	assert.Nil(t, joinReasons(nil, nil))

	one := joinReasons(strp("image generation failed"), nil)
	require.NotNil(t, one)
	assert.Equal(t, "image generation failed", *one)

	both := joinReasons(strp("image generation failed"), strp("video generation failed"))
	require.NotNil(t, both)
	assert.Equal(t, "image generation failed; video generation failed", *both)
}
