package stem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convcheck/internal/stem"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "timestamp suffix", in: "IMG001_1699999999.jpg", want: "IMG001.jpg"},
		{name: "no suffix", in: "IMG001.jpg", want: "IMG001.jpg"},
		{name: "digits without underscore", in: "img123.jpg", want: "img123.jpg"},
		{name: "only last group stripped", in: "photo_1_002.jpg", want: "photo_1.jpg"},
		{name: "extension preserved", in: "scan_42.PNG", want: "scan.PNG"},
		{name: "no extension", in: "photo_123", want: "photo_123"},
		{name: "underscore without digits", in: "photo_.jpg", want: "photo_.jpg"},
		{name: "digits not before extension", in: "photo_12x.jpg", want: "photo_12x.jpg"},
		{name: "only final extension considered", in: "a_1.tar_2.gz", want: "a_1.tar.gz"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stem.Normalize(tc.in))
		})
	}
}

func TestNormalizeIsIdentityWithoutSuffix(t *testing.T) {
	for _, name := range []string{"IMG_E.heic", "holiday.jpeg", "2024-01-01.png", "x.y.z"} {
		require.Equal(t, name, stem.Normalize(name))
	}
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	got := stem.NormalizeAll([]string{"b_2.jpg", "a_1.jpg", "c.jpg"})
	assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, got)
	assert.Empty(t, stem.NormalizeAll(nil))
}

func TestBaseAndExt(t *testing.T) {
	assert.Equal(t, "IMG001", stem.Base("IMG001.heic"))
	assert.Equal(t, "archive.tar", stem.Base("archive.tar.gz"))
	assert.Equal(t, "noext", stem.Base("noext"))
	assert.Equal(t, ".heic", stem.Ext("IMG001.HEIC"))
	assert.Equal(t, "", stem.Ext("noext"))
}

func TestFoldComposesDecomposedNames(t *testing.T) {
	decomposed := "Cafe\u0301.heic"
	composed := "Caf\u00e9.heic"
	require.NotEqual(t, decomposed, composed)
	assert.Equal(t, composed, stem.Fold(decomposed))
	assert.Equal(t, []string{composed, "plain.jpg"}, stem.FoldAll([]string{decomposed, "plain.jpg"}))
}
