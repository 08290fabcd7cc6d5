package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// PropertyValue is a custom property value whose concrete type is fixed when
// the property is parsed. It is one of StringValue, IntValue, FloatValue,
// BoolValue or ColorValue.
type PropertyValue interface {
	isPropertyValue()
}

type (
	StringValue string
	IntValue    int64
	FloatValue  float64
	BoolValue   bool
	ColorValue  color.RGBA
)

func (StringValue) isPropertyValue() {}
func (IntValue) isPropertyValue()    {}
func (FloatValue) isPropertyValue()  {}
func (BoolValue) isPropertyValue()   {}
func (ColorValue) isPropertyValue()  {}

// Tiled property type names.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeColor  = "color"
	TypeFile   = "file"
	TypeObject = "object"
)

// PropertyParseError reports a property whose textual value cannot be coerced
// to its declared type.
type PropertyParseError struct {
	Owner    string // layer or tile the property is attached to, may be empty
	Property string
	Type     string
	Value    string
	Err      error
}

func (e *PropertyParseError) Error() string {
	owner := ""
	if e.Owner != "" {
		owner = e.Owner + ": "
	}
	return fmt.Sprintf("%sproperty %q (%s) has malformed value %q: %v", owner, e.Property, e.Type, e.Value, e.Err)
}

func (e *PropertyParseError) Unwrap() error { return e.Err }

var errUnsupportedConversion = errors.New("unsupported conversion")

// ParseProperty converts a raw TMX property into a typed value. An empty type
// means string. Unknown custom types (Tiled "class" properties) are kept as
// strings.
func ParseProperty(name, typ, raw string) (PropertyValue, error) {
	fail := func(err error) (PropertyValue, error) {
		return nil, &PropertyParseError{Property: name, Type: typ, Value: raw, Err: err}
	}

	switch typ {
	case "", TypeString, TypeFile:
		return StringValue(raw), nil
	case TypeInt, TypeObject:
		i, err := parseInt(raw)
		if err != nil {
			return fail(err)
		}
		return IntValue(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fail(err)
		}
		return FloatValue(f), nil
	case TypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fail(err)
		}
		return BoolValue(b), nil
	case TypeColor:
		c, err := parseColor(raw)
		if err != nil {
			return fail(err)
		}
		return ColorValue(c), nil
	default:
		return StringValue(raw), nil
	}
}

// parseInt accepts decimal and prefixed literals: 0x10, 0b101, 0o17. A bare
// leading zero is rejected so "010" is not silently read as octal 8.
func parseInt(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == '_' || (digits[1] >= '0' && digits[1] <= '9')) {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseInt(s, 0, 64)
}

// parseColor reads Tiled's #AARRGGBB or #RRGGBB notation. Empty means
// transparent black, which is what Tiled writes for an unset color.
func parseColor(raw string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if s == "" {
		return color.RGBA{}, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	switch len(s) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 8:
		return color.RGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	default:
		return color.RGBA{}, fmt.Errorf("expected 6 or 8 hex digits, got %d", len(s))
	}
}

// Properties is an insertion-ordered property bag.
type Properties struct {
	names  []string
	values map[string]PropertyValue
}

// Set adds or replaces a property. Replacing keeps the original position.
func (p *Properties) Set(name string, v PropertyValue) {
	if p.values == nil {
		p.values = make(map[string]PropertyValue)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = v
}

func (p *Properties) Get(name string) (PropertyValue, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns property names in insertion order.
func (p *Properties) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

func (p *Properties) Len() int { return len(p.names) }

// Bool reports whether name is set to a true boolean. A missing property, or
// one of another type, reads as false.
func (p *Properties) Bool(name string) bool {
	v, ok := p.values[name]
	if !ok {
		return false
	}
	b, ok := v.(BoolValue)
	return ok && bool(b)
}

// AsInt coerces a value to an integer: strings are parsed with base
// detection, floats truncate toward zero and booleans map to 0 or 1.
func AsInt(v PropertyValue) (int, error) {
	switch t := v.(type) {
	case IntValue:
		return int(t), nil
	case FloatValue:
		return int(t), nil
	case BoolValue:
		if t {
			return 1, nil
		}
		return 0, nil
	case StringValue:
		i, err := parseInt(string(t))
		if err != nil {
			return 0, err
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("%w from %T", errUnsupportedConversion, v)
	}
}

// AsFloat coerces a value to a float64 the same way AsInt does.
func AsFloat(v PropertyValue) (float64, error) {
	switch t := v.(type) {
	case FloatValue:
		return float64(t), nil
	case IntValue:
		return float64(t), nil
	case BoolValue:
		if t {
			return 1, nil
		}
		return 0, nil
	case StringValue:
		return strconv.ParseFloat(string(t), 64)
	default:
		return 0, fmt.Errorf("%w from %T", errUnsupportedConversion, v)
	}
}

// String returns a string property, or "" when missing or of another type.
func (p *Properties) String(name string) string {
	v, ok := p.values[name]
	if !ok {
		return ""
	}
	s, _ := v.(StringValue)
	return string(s)
}
