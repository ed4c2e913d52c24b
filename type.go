package strarray

import "reflect"

func isTextual(candidate reflect.Type) bool {
	return candidate != nil && candidate.Kind() == reflect.String
}

func isArrayType(candidate reflect.Type) bool {
	if candidate == nil {
		return false
	}
	switch candidate.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

//ComponentType returns the element type of a slice or array type, nil otherwise
func ComponentType(candidate reflect.Type) reflect.Type {
	if !isArrayType(candidate) {
		return nil
	}
	return candidate.Elem()
}

//UnitComponentType unwraps nested slice or array types to the innermost element type
func UnitComponentType(candidate reflect.Type) reflect.Type {
	for {
		component := ComponentType(candidate)
		if component == nil {
			return candidate
		}
		candidate = component
	}
}
