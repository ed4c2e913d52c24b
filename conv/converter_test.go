package conv

import (
	"reflect"
	"testing"
	"time"
)

func TestConvertToBool(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name     string
		src      interface{}
		expected bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"int 1", 1, true},
		{"int 0", 0, false},
		{"string true", "true", true},
		{"string false", "false", false},
		{"string 1", "1", true},
		{"string 0", "0", false},
		{"string numeric", "2.5", true},
		{"string padded", " true ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := converter.Convert(tc.src, reflect.TypeOf(true))
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestConvertToInt(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name     string
		src      interface{}
		expected int
	}{
		{"int", 123, 123},
		{"int8", int8(8), 8},
		{"uint", uint(123), 123},
		{"float64", 123.5, 123},
		{"string", "123", 123},
		{"string float", "123.5", 123},
		{"string hex", "0x10", 16},
		{"string padded", " 42 ", 42},
		{"bool true", true, 1},
		{"bool false", false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := converter.Convert(tc.src, reflect.TypeOf(0))
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestConvertToUint(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	result, err := converter.Convert("42", reflect.TypeOf(uint16(0)))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if result != uint16(42) {
		t.Errorf("Expected 42, got %v", result)
	}

	if _, err = converter.Convert("-1", reflect.TypeOf(uint(0))); err == nil {
		t.Errorf("Expected error for negative value")
	}
}

func TestConvertToFloat(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name     string
		src      interface{}
		expected float64
	}{
		{"float64", 1.5, 1.5},
		{"int", 2, 2},
		{"string", "3.25", 3.25},
		{"bool", true, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := converter.Convert(tc.src, reflect.TypeOf(0.0))
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestConvertToString(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name     string
		src      interface{}
		expected string
	}{
		{"string", "hello", "hello"},
		{"int", 123, "123"},
		{"bool true", true, "true"},
		{"float", 123.456, "123.456"},
		{"bytes", []byte("hello"), "hello"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := converter.Convert(tc.src, reflect.TypeOf(""))
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestConvertToTime(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name string
		src  interface{}
	}{
		{"default layout", "2021-03-15 10:30:00.000"},
		{"rfc3339", "2021-03-15T10:30:00Z"},
		{"date only", "2021-03-15"},
		{"unix seconds", int64(1615804200)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := converter.Convert(tc.src, reflect.TypeOf(time.Time{}))
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if _, ok := result.(time.Time); !ok {
				t.Errorf("Expected time.Time, got %T", result)
			}
		})
	}

	if _, err := converter.Convert("not a time", reflect.TypeOf(time.Time{})); err == nil {
		t.Errorf("Expected error for unparseable time")
	}
}

func TestConvertToPointer(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	result, err := converter.Convert("42", reflect.TypeOf((*int)(nil)))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	ptr, ok := result.(*int)
	if !ok || ptr == nil || *ptr != 42 {
		t.Errorf("Expected *int 42, got %v", result)
	}
}

func TestConvertOverflow(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	if _, err := converter.Convert("300", reflect.TypeOf(int8(0))); err == nil {
		t.Errorf("Expected overflow error")
	}
	if _, err := converter.Convert("70000", reflect.TypeOf(uint16(0))); err == nil {
		t.Errorf("Expected overflow error")
	}
}

func TestSupports(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	testCases := []struct {
		name     string
		src      interface{}
		destType reflect.Type
		expected bool
	}{
		{"string to int", "1", reflect.TypeOf(0), true},
		{"string to float", "1.5", reflect.TypeOf(0.0), true},
		{"string to bool", "true", reflect.TypeOf(true), true},
		{"string to string", "abc", reflect.TypeOf(""), true},
		{"non numeric to int", "abc", reflect.TypeOf(0), false},
		{"negative to uint", "-1", reflect.TypeOf(uint(0)), false},
		{"string to time", "2021-03-15", reflect.TypeOf(time.Time{}), true},
		{"nil src", nil, reflect.TypeOf(0), false},
		{"nil dest", "1", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := converter.Supports(tc.src, tc.destType); actual != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, actual)
			}
		})
	}
}

func TestRegisterConversion(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	type color struct {
		Name string
	}
	colorType := reflect.TypeOf(color{})
	converter.RegisterConversion(reflect.TypeOf(""), colorType, func(src interface{}, destType reflect.Type, opts Options) (interface{}, error) {
		return color{Name: src.(string)}, nil
	})

	if !converter.Supports("red", colorType) {
		t.Fatalf("Expected custom conversion to be supported")
	}
	result, err := converter.Convert("red", colorType)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if result.(color).Name != "red" {
		t.Errorf("Expected red, got %v", result)
	}
}

func TestConvertNamedType(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	type level int
	result, err := converter.Convert("3", reflect.TypeOf(level(0)))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if result != level(3) {
		t.Errorf("Expected level(3), got %v", result)
	}
}
