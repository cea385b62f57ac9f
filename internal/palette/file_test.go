package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	validYAML := `name: brand
names:
  brand-red: "#e23d2d"
  brand-ink: "navy"
schemes:
  blue:
    primary: "#1d4ed8"
  green:
    primary: "green-700"
    shadowed: "#15803d33"
`

	badColor := `name: broken
schemes:
  blue:
    primary: "#12"
`

	badScheme := `name: broken
schemes:
  magenta:
    primary: "#ff00ff"
`

	badName := `name: broken
names:
  Brand_Red: "#e23d2d"
`

	missingName := `names:
  brand: "#e23d2d"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, f *File, err error)
	}{
		{
			name:     "valid palette is parsed",
			contents: validYAML,
			assert: func(t *testing.T, f *File, err error) {
				require.NoError(t, err)
				require.Equal(t, "brand", f.Name)
				require.Len(t, f.Names, 2)
				require.Equal(t, "#1d4ed8", f.Schemes["blue"].Primary)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "name: [unterminated\n",
			assert: func(t *testing.T, f *File, err error) {
				var parseErr *swatcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "palette.yaml", parseErr.Path)
			},
		},
		{
			name:     "invalid scheme color is rejected",
			contents: badColor,
			assert: func(t *testing.T, f *File, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "schemes[blue].primary", validationErr.Field)
				require.Contains(t, validationErr.Message, "color")
			},
		},
		{
			name:     "unknown scheme key is rejected",
			contents: badScheme,
			assert: func(t *testing.T, f *File, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "scheme_key")
			},
		},
		{
			name:     "malformed color name is rejected",
			contents: badName,
			assert: func(t *testing.T, f *File, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "color_name")
			},
		},
		{
			name:     "missing name is rejected",
			contents: missingName,
			assert: func(t *testing.T, f *File, err error) {
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "name", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := ParseFile("palette.yaml", []byte(tc.contents))
			tc.assert(t, f, err)
		})
	}
}

func TestLoadFileAndMerge(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: brand
names:
  brand-red: "#E23D2D"
  ink: "navy"
schemes:
  blue:
    primary: "#1d4ed8"
  green:
    primary: "green-700"
    shadowed: "#15803d33"
`), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	merged, err := Default().Merge(f)
	require.NoError(t, err)
	assert.Equal(t, "brand", merged.Name)

	hex, ok := merged.Resolve("brand-red")
	require.True(t, ok)
	assert.Equal(t, "#E23D2D", hex)

	hex, ok = merged.Resolve("ink")
	require.True(t, ok)
	assert.Equal(t, "#000080", hex)

	assert.Equal(t, ColorScheme{Primary: "#1d4ed8", Shadowed: "#1d4ed829"}, merged.Scheme(SchemeBlue))
	assert.Equal(t, ColorScheme{Primary: "#15803d", Shadowed: "#15803d33"}, merged.Scheme(SchemeGreen))
	assert.Equal(t, Default().Scheme(SchemeRed), merged.Scheme(SchemeRed))

	_, ok = Default().Resolve("brand-red")
	assert.False(t, ok, "merging must not mutate the source palette")
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, os.IsNotExist(parseErr.Err))
}

func TestMergeNilFile(t *testing.T) {
	t.Parallel()

	merged, err := Default().Merge(nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Scheme(SchemeBlue), merged.Scheme(SchemeBlue))
}
