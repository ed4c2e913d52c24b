package strarray

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitComponentType(t *testing.T) {
	var testCases = []struct {
		description string
		candidate   reflect.Type
		expect      reflect.Type
	}{
		{
			description: "flat slice",
			candidate:   reflect.TypeOf([]int{}),
			expect:      reflect.TypeOf(0),
		},
		{
			description: "nested slice",
			candidate:   reflect.TypeOf([][][]string{}),
			expect:      reflect.TypeOf(""),
		},
		{
			description: "fixed size array",
			candidate:   reflect.TypeOf([4][2]float64{}),
			expect:      reflect.TypeOf(0.0),
		},
		{
			description: "mixed slice of arrays",
			candidate:   reflect.TypeOf([][3]uint8{}),
			expect:      reflect.TypeOf(uint8(0)),
		},
		{
			description: "non array type",
			candidate:   reflect.TypeOf(0),
			expect:      reflect.TypeOf(0),
		},
	}

	for _, testCase := range testCases {
		actual := UnitComponentType(testCase.candidate)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestComponentType(t *testing.T) {
	assert.EqualValues(t, reflect.TypeOf([]int{}), ComponentType(reflect.TypeOf([][]int{})))
	assert.Nil(t, ComponentType(reflect.TypeOf(0)))
	assert.Nil(t, ComponentType(nil))
}
