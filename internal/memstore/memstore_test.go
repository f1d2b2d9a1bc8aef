package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetMissing(t *testing.T) {
	p := New()

	value, found, err := p.Get(context.Background(), "conversation:class_cs")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestProfile_SetThenGet(t *testing.T) {
	ctx := context.Background()
	p := New()

	require.NoError(t, p.Set(ctx, "k", []byte(`[1,2]`)))

	value, found, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1,2]`, string(value))
	assert.Equal(t, []string{"k"}, p.Keys())
}

func TestProfile_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	p := New()

	raw := []byte("abc")
	require.NoError(t, p.Set(ctx, "k", raw))
	raw[0] = 'x'

	got, _, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestProfile_Quota(t *testing.T) {
	ctx := context.Background()
	p := New(WithQuota(10))

	require.NoError(t, p.Set(ctx, "a", []byte("12345")))
	assert.Equal(t, 6, p.Used())

	// overwriting only counts the size difference
	require.NoError(t, p.Set(ctx, "a", []byte("123456789")))
	assert.Equal(t, 10, p.Used())

	err := p.Set(ctx, "b", []byte("1"))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	_, found, err := p.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 10, p.Used())
}

func TestProfile_Disabled(t *testing.T) {
	ctx := context.Background()
	p := New()
	require.NoError(t, p.Set(ctx, "k", []byte("v")))

	p.Disable()
	_, _, err := p.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, p.Set(ctx, "k", []byte("w")), ErrDisabled)

	p.Enable()
	value, found, err := p.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", string(value))
}
