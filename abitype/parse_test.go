package abitype

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/purelabio/abi"
)

// abi.Schema embeds slices, so it isn't comparable with == or !=; this
// compares the parts relevant to atomic and single-level array schemas.
func schemaShallowEqual(a, b abi.Schema) bool {
	if a.Kind != b.Kind || a.Bits != b.Bits || a.Size != b.Size {
		return false
	}
	if (a.Elem == nil) != (b.Elem == nil) {
		return false
	}
	if a.Elem != nil && !schemaShallowEqual(*a.Elem, *b.Elem) {
		return false
	}
	return true
}

func TestParseAtomicTypes(t *testing.T) {
	cases := []struct {
		typeName string
		want     abi.Schema
	}{
		{"bool", abi.Bool()},
		{"address", abi.Address()},
		{"bytes", abi.DynamicBytes()},
		{"string", abi.Utf8String()},
		{"uint", abi.Uint(256)},
		{"uint256", abi.Uint(256)},
		{"uint8", abi.Uint(8)},
		{"int", abi.Int(256)},
		{"int128", abi.Int(128)},
		{"bytes32", abi.BytesN(32)},
		{"bytes1", abi.BytesN(1)},
	}

	for _, test := range cases {
		got, err := Parse(test.typeName)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", test.typeName, err)
		}
		if got.Kind != test.want.Kind || got.Bits != test.want.Bits || got.Size != test.want.Size {
			t.Fatalf("Parse(%q): got %s, want %s", test.typeName, spew.Sdump(got), spew.Sdump(test.want))
		}
	}
}

func TestParseArrayTypes(t *testing.T) {
	got, err := Parse("uint256[3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := abi.StaticArray(abi.Uint(256), 3)
	if !schemaShallowEqual(got, want) {
		t.Fatalf("got %s, want %s", spew.Sdump(got), spew.Sdump(want))
	}

	got, err = Parse("address[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != abi.KindDynamicArray || !schemaShallowEqual(*got.Elem, abi.Address()) {
		t.Fatalf("got %s", spew.Sdump(got))
	}

	got, err = Parse("uint256[2][]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != abi.KindDynamicArray {
		t.Fatalf("expected outer dynamic array, got %s", spew.Sdump(got))
	}
	inner := *got.Elem
	if inner.Kind != abi.KindStaticArray || inner.Size != 2 || !schemaShallowEqual(*inner.Elem, abi.Uint(256)) {
		t.Fatalf("expected inner static array of 2 uint256, got %s", spew.Sdump(inner))
	}
}

func TestParseUnrecognizedType(t *testing.T) {
	_, err := Parse("fixed128x18")
	if err == nil {
		t.Fatalf("expected an error for an unsupported type string")
	}
}

func TestParseTupleRequiresComponents(t *testing.T) {
	_, err := parse("tuple", nil)
	if err == nil {
		t.Fatalf("expected an error when a tuple has no components")
	}
}

func TestParseTupleViaParam(t *testing.T) {
	param := Param{
		Type: "tuple",
		Components: []Param{
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
	}

	schema, err := param.Schema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Kind != abi.KindStaticStruct {
		t.Fatalf("expected a static struct, got %s", spew.Sdump(schema))
	}
	idx, ok := schema.FieldIndex("amount")
	if !ok || idx != 1 {
		t.Fatalf("expected field \"amount\" at index 1, got %d, %v", idx, ok)
	}
}

func TestParseTupleArrayViaParam(t *testing.T) {
	param := Param{
		Type: "tuple[]",
		Components: []Param{
			{Name: "id", Type: "uint256"},
		},
	}

	schema, err := param.Schema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Kind != abi.KindDynamicArray {
		t.Fatalf("expected a dynamic array of tuples, got %s", spew.Sdump(schema))
	}
	if schema.Elem.Kind != abi.KindStaticStruct {
		t.Fatalf("expected tuple elements, got %s", spew.Sdump(*schema.Elem))
	}
}

func TestParamsSchema(t *testing.T) {
	params := []Param{
		{Name: "to", Type: "address"},
		{Name: "amount", Type: "uint256"},
	}
	schema, err := ParamsSchema(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Kind != abi.KindStaticStruct || len(schema.Fields) != 2 {
		t.Fatalf("unexpected schema: %s", spew.Sdump(schema))
	}
}
