// Package strarray converts textual sequence representations into
// n-dimensional typed slices or arrays. It parses the input with a generic
// sequence parser and recursively builds the destination, delegating leaf
// token conversion to a pluggable conversion service.
package strarray

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/strarray/conv"
	"github.com/viant/strarray/seq"
	"github.com/viant/xunsafe"
)

//ParseFunc parses a textual sequence into a tree
type ParseFunc func(input string) (*seq.Node, error)

//Converter converts strings into n-dimensional slices or arrays,
//it is stateless across calls and safe to reuse sequentially
type Converter struct {
	parse   ParseFunc
	service Service
}

//New creates a converter, by default it uses the seq parser and the conv scalar service
func New(options ...Option) *Converter {
	ret := &Converter{parse: seq.Parse}
	Options(options).Apply(ret)
	if ret.service == nil {
		ret.service = conv.NewConverter(conv.DefaultOptions())
	}
	return ret
}

//CanConvertTypes reports whether source and destination types conform:
//the source has to be textual and the destination a slice or array type
func (c *Converter) CanConvertTypes(src, dest reflect.Type) bool {
	return isTextual(src) && isArrayType(dest)
}

// CanConvert reports whether src can be converted into dest. Beyond the type
// check it requires src to parse; an empty sequence is always convertible.
// Otherwise only the first leaf token is probed against the innermost
// component type. The check is a heuristic: for a heterogeneous sequence it
// may report true even when a later element cannot be converted, a
// compromise made in the interest of speed, since ensuring correctness would
// require a premature conversion of the entire sequence.
func (c *Converter) CanConvert(src string, dest reflect.Type) bool {
	if !c.CanConvertTypes(reflect.TypeOf(src), dest) {
		return false
	}
	node, err := c.parse(src)
	if err != nil {
		return false
	}
	if node.Count() == 0 {
		return true
	}
	return c.service.Supports(firstToken(node), UnitComponentType(dest))
}

//Convert converts src into a value of dest slice or array type. Input that
//fails to parse yields a nil result with no error, parse feasibility is
//reported by CanConvert.
func (c *Converter) Convert(src string, dest reflect.Type) (interface{}, error) {
	if ComponentType(dest) == nil {
		return nil, fmt.Errorf("%s is not an array type", dest)
	}
	node, err := c.parse(src)
	if err != nil {
		return nil, nil
	}
	result, err := c.convertNode(node, dest)
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

func (c *Converter) convertNode(node *seq.Node, dest reflect.Type) (reflect.Value, error) {
	count := node.Count()
	result, err := allocate(dest, count)
	if err != nil {
		return reflect.Value{}, err
	}
	component := dest.Elem()
	if isArrayType(component) {
		for i := 0; i < count; i++ {
			item, err := c.convertNode(node.Child(i), component)
			if err != nil {
				return reflect.Value{}, err
			}
			result.Index(i).Set(item)
		}
		return result, nil
	}
	if err := c.setLeaves(node, result, component); err != nil {
		return reflect.Value{}, err
	}
	return result, nil
}

func (c *Converter) setLeaves(node *seq.Node, result reflect.Value, component reflect.Type) error {
	var xSlice *xunsafe.Slice
	var ptr unsafe.Pointer
	if result.Kind() == reflect.Slice && isScalarKind(component.Kind()) {
		xSlice = xunsafe.NewSlice(result.Type())
		ptr = xunsafe.AsPointer(result.Addr().Interface())
	}
	count := node.Count()
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child.Count() > 0 {
			return fmt.Errorf("cannot convert group into %s", component)
		}
		item, err := c.service.Convert(child.Token(), component)
		if err != nil {
			return fmt.Errorf("failed to convert element %v: %w", i, err)
		}
		if xSlice != nil && reflect.TypeOf(item) == component {
			xSlice.SetValueAt(ptr, i, item)
			continue
		}
		if item == nil {
			result.Index(i).Set(reflect.Zero(component))
			continue
		}
		itemValue := reflect.ValueOf(item)
		if itemType := itemValue.Type(); !itemType.AssignableTo(component) {
			if !itemType.ConvertibleTo(component) {
				return fmt.Errorf("cannot assign %s to %s", itemType, component)
			}
			itemValue = itemValue.Convert(component)
		}
		result.Index(i).Set(itemValue)
	}
	return nil
}

//allocate returns an addressable destination value sized to count elements
func allocate(dest reflect.Type, count int) (reflect.Value, error) {
	result := reflect.New(dest).Elem()
	switch dest.Kind() {
	case reflect.Slice:
		result.Set(reflect.MakeSlice(dest, count, count))
	case reflect.Array:
		if dest.Len() != count {
			return reflect.Value{}, fmt.Errorf("cannot fit %v elements into %s", count, dest)
		}
	}
	return result, nil
}

//firstToken traverses the tree to find the first leaf token
func firstToken(node *seq.Node) string {
	for node.Count() > 0 {
		node = node.Child(0)
	}
	return node.Token()
}

func isScalarKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}
