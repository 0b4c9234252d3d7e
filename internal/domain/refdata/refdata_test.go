package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch_Code(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Nairobi East", "NAIEAS"},
		{"Mombasa", "MOMBAS"},
		{"Gil", "GIL"},
		{"Lake Victoria North Shore", "LAKVICNO"},
		{"nairobi west", "NAIWES"},
	}
	for _, tc := range cases {
		b, err := NewBranch(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, b.Code(), "branch %q", tc.name)
	}
}

func TestNewBranch_EmptyName(t *testing.T) {
	_, err := NewBranch("   ")
	assert.Error(t, err)
}

func TestSize_ShortCode(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"SIZE_2", "SIZE2"},
		{" size_3 ", "SIZE3"},
		{"S-10", "S10"},
		{"XL", "XL"},
	}
	for _, tc := range cases {
		s, err := NewSize(tc.code, "", 0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, s.ShortCode(), "size %q", tc.code)
	}
}
