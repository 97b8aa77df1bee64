package abitype

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/purelabio/abi"
)

var (
	uintReg      = regexp.MustCompile(`^uint(\d*)$`)
	intReg       = regexp.MustCompile(`^int(\d*)$`)
	byteArrayReg = regexp.MustCompile(`^bytes(\d+)$`)
	fixedArrReg  = regexp.MustCompile(`^(.+)\[(\d+)\]$`)
	dynArrReg    = regexp.MustCompile(`^(.+)\[\]$`)
)

/*
Parses a Solidity type string, such as "uint256", "address[12]" or
"bytes32[]", into a Schema. Tuple types ("tuple", "tuple[]", ...) can't be
resolved from the string alone, since Solidity type strings don't carry
field types for tuples; use Param.Schema for those.
*/
func Parse(typeName string) (abi.Schema, error) {
	return parse(typeName, nil)
}

func parse(typeName string, components []Param) (abi.Schema, error) {
	if match := dynArrReg.FindStringSubmatch(typeName); match != nil {
		elem, err := parse(match[1], components)
		if err != nil {
			return abi.Schema{}, err
		}
		return abi.DynamicArray(elem), nil
	}

	if match := fixedArrReg.FindStringSubmatch(typeName); match != nil {
		length, err := strconv.Atoi(match[2])
		if err != nil {
			return abi.Schema{}, errors.Wrapf(err, "failed to parse array length in %q", typeName)
		}
		elem, err := parse(match[1], components)
		if err != nil {
			return abi.Schema{}, err
		}
		return abi.StaticArray(elem, length), nil
	}

	switch {
	case typeName == "bool":
		return abi.Bool(), nil

	case typeName == "address":
		return abi.Address(), nil

	case typeName == "bytes":
		return abi.DynamicBytes(), nil

	case typeName == "string":
		return abi.Utf8String(), nil

	case typeName == "tuple":
		return tupleSchema(components)

	case byteArrayReg.MatchString(typeName):
		match := byteArrayReg.FindStringSubmatch(typeName)
		length, err := strconv.Atoi(match[1])
		if err != nil {
			return abi.Schema{}, errors.Wrapf(err, "failed to parse %q as a Solidity type", typeName)
		}
		return abi.BytesN(length), nil

	case uintReg.MatchString(typeName):
		bits, err := bitWidth(uintReg, typeName)
		if err != nil {
			return abi.Schema{}, err
		}
		return abi.Uint(bits), nil

	case intReg.MatchString(typeName):
		bits, err := bitWidth(intReg, typeName)
		if err != nil {
			return abi.Schema{}, err
		}
		return abi.Int(bits), nil

	default:
		return abi.Schema{}, errors.Errorf("failed to parse %q as a Solidity type", typeName)
	}
}

func bitWidth(reg *regexp.Regexp, typeName string) (int, error) {
	match := reg.FindStringSubmatch(typeName)
	if match[1] == "" {
		return 256, nil
	}
	bits, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse bit width in %q", typeName)
	}
	return bits, nil
}

func tupleSchema(components []Param) (abi.Schema, error) {
	if len(components) == 0 {
		return abi.Schema{}, errors.New("tuple type requires at least one component")
	}

	fields := make([]abi.Schema, len(components))
	names := make([]string, len(components))
	for i, component := range components {
		field, err := component.Schema()
		if err != nil {
			return abi.Schema{}, errors.Wrapf(err, "failed to parse tuple component %q", component.Name)
		}
		fields[i] = field
		names[i] = component.Name
	}

	return abi.NamedTuple(names, fields...), nil
}
