package strarray

import "reflect"

//Service represents a leaf value conversion service
type Service interface {
	//Supports reports whether src can be converted into destType
	Supports(src interface{}, destType reflect.Type) bool

	//Convert converts src into a value of destType
	Convert(src interface{}, destType reflect.Type) (interface{}, error)
}
