package colorutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestFormatColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "six digits with hash", input: "#0000ff", want: "0000ff"},
		{name: "eight digits with hash", input: "#0000ffff", want: "0000ffff"},
		{name: "three digit shorthand", input: "#00f", want: "0000ff"},
		{name: "four digit shorthand", input: "#00ff", want: "0000ffff"},
		{name: "shorthand without hash", input: "f0a", want: "ff00aa"},
		{name: "case is preserved", input: "#AbC", want: "AAbbCC"},
		{name: "css name", input: "blue", want: "0000ff"},
		{name: "css name any case", input: "Blue", want: "0000ff"},
		{name: "transparent", input: "transparent", want: "00000000"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := FormatColor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatColorExpandsEveryShorthand(t *testing.T) {
	t.Parallel()

	const digits = "0123456789abcdefABCDEF"
	for _, a := range digits {
		for _, b := range []rune{'0', '7', 'f', 'C'} {
			three := fmt.Sprintf("%c%c%c", a, b, a)
			got, err := FormatColor("#" + three)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("%c%c%c%c%c%c", a, a, b, b, a, a), got)

			four := three + string(b)
			got, err = FormatColor("#" + four)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprintf("%c%c%c%c%c%c%c%c", a, a, b, b, a, a, b, b), got)
		}
	}
}

func TestFormatColorRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"not-a-color",
		"#12",
		"",
		"#",
		"#12345",
		"#1234567",
		"#123456789",
		"#ggg",
		"##fff",
		" #fff",
		"#fff ",
		"zz123456",
		"color:#1234",
		"hello-abcdef",
	}

	for _, input := range inputs {
		input := input
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			t.Parallel()
			got, err := FormatColor(input)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, swatcherrors.ErrInvalidColorFormat))

			var formatErr *swatcherrors.ColorFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, input, formatErr.Input)
		})
	}
}

func TestFormatColorIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"#abc", "#abcd", "#3b82f6", "#3B82F6CC", "red", "transparent"} {
		once, err := FormatColor(input)
		require.NoError(t, err)

		twice, err := FormatColor(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestConverterResolvesCustomNames(t *testing.T) {
	t.Parallel()

	conv := New(NameTable{"red": "#ff0000", "brand": "#e23d2d80", "broken": "#zzz"})

	got, err := conv.FormatColor("red")
	require.NoError(t, err)
	assert.Equal(t, "ff0000", got)

	got, err = conv.FormatColor("BRAND")
	require.NoError(t, err)
	assert.Equal(t, "e23d2d80", got)

	_, err = conv.FormatColor("broken")
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorFormat)

	_, err = conv.FormatColor("blue")
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorFormat, "css names are not part of a custom table")
}

func TestConverterWithoutNames(t *testing.T) {
	t.Parallel()

	conv := New(nil)

	_, err := conv.FormatColor("red")
	require.ErrorIs(t, err, swatcherrors.ErrInvalidColorFormat)

	got, err := conv.FormatColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, "ff0000", got)
}

func TestCSSNames(t *testing.T) {
	t.Parallel()

	names := CSSNames()
	assert.Equal(t, "#ff0000", names["red"])
	assert.Equal(t, "#6495ed", names["cornflowerblue"])
	assert.Equal(t, "#00000000", names["transparent"])

	for name, hex := range names {
		_, err := New(nil).FormatColor(hex)
		require.NoError(t, err, "table entry %s=%s", name, hex)
	}
}
