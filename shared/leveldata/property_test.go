package leveldata

import (
	"errors"
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		raw  string
		want PropertyValue
	}{
		{"untyped", "", "hello", StringValue("hello")},
		{"string", TypeString, "0x10", StringValue("0x10")},
		{"file", TypeFile, "../tiles.tsx", StringValue("../tiles.tsx")},
		{"decimal", TypeInt, "42", IntValue(42)},
		{"negative", TypeInt, " -3 ", IntValue(-3)},
		{"hex", TypeInt, "0x10", IntValue(16)},
		{"binary", TypeInt, "0b101", IntValue(5)},
		{"octal", TypeInt, "0o17", IntValue(15)},
		{"zero", TypeInt, "0", IntValue(0)},
		{"negative zero", TypeInt, "-0", IntValue(0)},
		{"object", TypeObject, "12", IntValue(12)},
		{"float", TypeFloat, "2.5", FloatValue(2.5)},
		{"bool", TypeBool, "true", BoolValue(true)},
		{"bool false", TypeBool, "false", BoolValue(false)},
		{"argb", TypeColor, "#ff102030", ColorValue(color.RGBA{A: 0xff, R: 0x10, G: 0x20, B: 0x30})},
		{"rgb", TypeColor, "#102030", ColorValue(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})},
		{"unset color", TypeColor, "", ColorValue(color.RGBA{})},
		{"class", "myclass", "raw", StringValue("raw")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseProperty("p", tc.typ, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePropertyMalformed(t *testing.T) {
	cases := []struct {
		typ string
		raw string
	}{
		{TypeInt, "high"},
		{TypeInt, "1.5"},
		{TypeInt, "010"},
		{TypeInt, "-07"},
		{TypeInt, "0_10"},
		{TypeFloat, "abc"},
		{TypeBool, "yes please"},
		{TypeColor, "#12345"},
		{TypeColor, "#zzzzzz"},
	}
	for _, tc := range cases {
		t.Run(tc.typ+"/"+tc.raw, func(t *testing.T) {
			_, err := ParseProperty("Z", tc.typ, tc.raw)
			require.Error(t, err)

			var perr *PropertyParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "Z", perr.Property)
			assert.Equal(t, tc.typ, perr.Type)
			assert.Equal(t, tc.raw, perr.Value)
		})
	}
}

func TestPropertyParseErrorUnwraps(t *testing.T) {
	_, err := ParseProperty("Z", TypeInt, "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `"Z"`)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestLeadingZeroIsNotOctal(t *testing.T) {
	_, err := ParseProperty("Z", TypeInt, "010")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = AsInt(StringValue("010"))
	assert.Error(t, err)

	got, err := AsInt(StringValue("10"))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		in   PropertyValue
		want int
	}{
		{IntValue(7), 7},
		{FloatValue(2.9), 2},
		{FloatValue(-2.9), -2},
		{StringValue("0x10"), 16},
		{StringValue("0b101"), 5},
		{StringValue("-1"), -1},
		{BoolValue(true), 1},
		{BoolValue(false), 0},
	}
	for _, tc := range cases {
		got, err := AsInt(tc.in)
		require.NoError(t, err, "%#v", tc.in)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}

	_, err := AsInt(StringValue("ground"))
	assert.Error(t, err)
	_, err = AsInt(ColorValue{})
	assert.Error(t, err)
}

func TestPropertiesKeepInsertionOrder(t *testing.T) {
	var p Properties
	p.Set("level", IntValue(1))
	p.Set("name", StringValue("roof"))
	p.Set("solid", BoolValue(true))
	p.Set("level", IntValue(2))

	assert.Equal(t, []string{"level", "name", "solid"}, p.Names())
	assert.Equal(t, 3, p.Len())

	v, ok := p.Get("level")
	require.True(t, ok)
	assert.Equal(t, IntValue(2), v)

	assert.True(t, p.Bool("solid"))
	assert.False(t, p.Bool("name"))
	assert.False(t, p.Bool("missing"))
}
