package conv

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultDateLayout is the default layout used for time parsing when no layout is specified
const DefaultDateLayout = "2006-01-02 15:04:05.000"

var timeType = reflect.TypeOf(time.Time{})

// Options contains configuration for the converter
type Options struct {
	// DateLayout specifies the layout for time parsing
	DateLayout string
	// TrimSpace controls whether textual input is trimmed before parsing
	TrimSpace bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		DateLayout: DefaultDateLayout,
		TrimSpace:  true,
	}
}

// Converter converts scalar values, it is safe for concurrent use
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, destType reflect.Type, opts Options) (interface{}, error)

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	return &Converter{options: options}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Supports reports whether src can be converted into destType.
// Feasibility is established with a trial conversion, which is cheap for
// the scalar destinations this converter handles.
func (c *Converter) Supports(src interface{}, destType reflect.Type) bool {
	if src == nil || destType == nil {
		return false
	}
	if _, ok := c.customConvMap.Load(typeKey{reflect.TypeOf(src), destType}); ok {
		return true
	}
	_, err := c.Convert(src, destType)
	return err == nil
}

// Convert converts src into a value of destType
func (c *Converter) Convert(src interface{}, destType reflect.Type) (interface{}, error) {
	if destType == nil {
		return nil, errors.New("destination type cannot be nil")
	}
	if src == nil {
		return reflect.Zero(destType).Interface(), nil
	}
	srcType := reflect.TypeOf(src)
	if v, ok := c.customConvMap.Load(typeKey{srcType, destType}); ok {
		return v.(ConversionFunc)(src, destType, c.options)
	}
	if destType.Kind() == reflect.Ptr {
		elem, err := c.Convert(src, destType.Elem())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(destType.Elem())
		ptr.Elem().Set(reflect.ValueOf(elem))
		return ptr.Interface(), nil
	}

	srcValue := reflect.ValueOf(src)
	dest := reflect.New(destType).Elem()
	switch destType.Kind() {
	case reflect.String:
		result, err := c.toString(srcValue)
		if err != nil {
			return nil, err
		}
		dest.SetString(result)
	case reflect.Bool:
		result, err := c.toBool(srcValue)
		if err != nil {
			return nil, err
		}
		dest.SetBool(result)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result, err := c.toInt(srcValue)
		if err != nil {
			return nil, err
		}
		if dest.OverflowInt(result) {
			return nil, fmt.Errorf("value %v overflows %s", result, destType)
		}
		dest.SetInt(result)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result, err := c.toUint(srcValue)
		if err != nil {
			return nil, err
		}
		if dest.OverflowUint(result) {
			return nil, fmt.Errorf("value %v overflows %s", result, destType)
		}
		dest.SetUint(result)
	case reflect.Float32, reflect.Float64:
		result, err := c.toFloat(srcValue)
		if err != nil {
			return nil, err
		}
		dest.SetFloat(result)
	case reflect.Struct:
		if destType != timeType {
			return nil, fmt.Errorf("unsupported conversion: %s to %s", srcType, destType)
		}
		result, err := c.toTime(srcValue)
		if err != nil {
			return nil, err
		}
		dest.Set(reflect.ValueOf(result))
	case reflect.Interface:
		if destType.NumMethod() != 0 || !srcType.AssignableTo(destType) {
			return nil, fmt.Errorf("unsupported conversion: %s to %s", srcType, destType)
		}
		dest.Set(srcValue)
	default:
		if !srcType.ConvertibleTo(destType) {
			return nil, fmt.Errorf("unsupported conversion: %s to %s", srcType, destType)
		}
		dest.Set(srcValue.Convert(destType))
	}
	return dest.Interface(), nil
}

func (c *Converter) text(srcValue reflect.Value) string {
	text := srcValue.String()
	if c.options.TrimSpace {
		text = strings.TrimSpace(text)
	}
	return text
}

func (c *Converter) toString(srcValue reflect.Value) (string, error) {
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(srcValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(srcValue.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() == reflect.Uint8 { // []byte
			return string(srcValue.Bytes()), nil
		}
	}
	return "", fmt.Errorf("cannot convert %v to string", srcValue.Type())
}

func (c *Converter) toBool(srcValue reflect.Value) (bool, error) {
	switch srcValue.Kind() {
	case reflect.Bool:
		return srcValue.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return srcValue.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float() != 0, nil
	case reflect.String:
		text := c.text(srcValue)
		result, err := strconv.ParseBool(text)
		if err != nil {
			// Try numeric conversion if boolean parsing fails
			if f, fErr := strconv.ParseFloat(text, 64); fErr == nil {
				return f != 0, nil
			}
			return false, err
		}
		return result, nil
	}
	return false, fmt.Errorf("cannot convert %v to bool", srcValue.Type())
}

func (c *Converter) toInt(srcValue reflect.Value) (int64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(srcValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(srcValue.Float()), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := c.text(srcValue)
		if strings.Contains(text, ".") {
			f, err := strconv.ParseFloat(text, 64)
			return int64(f), err
		}
		return strconv.ParseInt(text, 0, 64)
	}
	return 0, fmt.Errorf("cannot convert %v to int", srcValue.Type())
}

func (c *Converter) toUint(srcValue reflect.Value) (uint64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return 0, fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		return uint64(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return srcValue.Uint(), nil
	case reflect.Float32, reflect.Float64:
		v := srcValue.Float()
		if v < 0 {
			return 0, fmt.Errorf("cannot convert negative value %f to unsigned int", v)
		}
		return uint64(v), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := c.text(srcValue)
		if strings.Contains(text, ".") {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return 0, err
			}
			if f < 0 {
				return 0, fmt.Errorf("cannot convert negative value %f to unsigned int", f)
			}
			return uint64(f), nil
		}
		return strconv.ParseUint(text, 0, 64)
	}
	return 0, fmt.Errorf("cannot convert %v to uint", srcValue.Type())
}

func (c *Converter) toFloat(srcValue reflect.Value) (float64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(srcValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float(), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return strconv.ParseFloat(c.text(srcValue), 64)
	}
	return 0, fmt.Errorf("cannot convert %v to float", srcValue.Type())
}

func (c *Converter) toTime(srcValue reflect.Value) (time.Time, error) {
	switch srcValue.Kind() {
	case reflect.String:
		text := c.text(srcValue)
		layout := c.options.DateLayout
		if layout == "" {
			layout = DefaultDateLayout
		}
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
		// Try other common formats
		formats := []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		}
		for _, format := range formats {
			if t, err = time.Parse(format, text); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse time string '%s': %w", text, err)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return unixTime(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unixTime(int64(srcValue.Uint())), nil
	case reflect.Float32, reflect.Float64:
		seconds := int64(srcValue.Float())
		fractional := srcValue.Float() - float64(seconds)
		return time.Unix(seconds, int64(fractional*1e9)), nil
	case reflect.Struct:
		if srcValue.Type() == timeType {
			return srcValue.Interface().(time.Time), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
}

func unixTime(value int64) time.Time {
	if value > 1e10 { // Assuming nanoseconds if value is very large
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}
