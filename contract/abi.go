package contract

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/purelabio/abi"
	"github.com/purelabio/abi/abitype"
	"github.com/purelabio/abi/rpctrans"
)

// Represents a contract method, obtained from a JSON ABI fragment. Useful
// for decoding "eth_call" return data.
type Function struct {
	Name     string
	Inputs   []abitype.Param
	Outputs  []abitype.Param
	Selector [4]byte

	outputSchema abi.Schema
}

// Implements "json.Unmarshaler"; precomputes the function's selector and
// output schema.
func (self *Function) UnmarshalJSON(input []byte) error {
	var plain struct {
		Name    string
		Inputs  []abitype.Param
		Outputs []abitype.Param
	}
	if err := json.Unmarshal(input, &plain); err != nil {
		return errors.WithStack(err)
	}

	schema, err := abitype.ParamsSchema(plain.Outputs)
	if err != nil {
		return errors.Wrapf(err, "failed to build output schema for function %q", plain.Name)
	}

	*self = Function{
		Name:         plain.Name,
		Inputs:       plain.Inputs,
		Outputs:      plain.Outputs,
		Selector:     FunctionSelector(plain.Name, plain.Inputs),
		outputSchema: schema,
	}
	return nil
}

// Decodes raw "eth_call" return data against this function's output
// parameters. A function with exactly one output yields that output's value
// directly; any other output count yields the whole output tuple.
func (self Function) DecodeOutput(raw []byte) (abi.Value, error) {
	val, err := abi.Decoder{}.Decode(raw, self.outputSchema)
	if err != nil {
		return abi.Value{}, err
	}
	if len(self.Outputs) == 1 {
		return val.Items[0], nil
	}
	return val, nil
}

// Represents a contract event, obtained from a JSON ABI fragment. Useful for
// filtering and decoding event logs.
type Event struct {
	Name      string
	Inputs    []abitype.Param
	Anonymous bool
	Topic     rpctrans.Word

	indexed    []abitype.Param
	nonIndexed []abitype.Param
	schema     abi.Schema // non-indexed fields only, as a tuple
}

// Implements "json.Unmarshaler"; precomputes the event's topic and splits
// its parameters into indexed and non-indexed groups.
func (self *Event) UnmarshalJSON(input []byte) error {
	var plain struct {
		Name      string
		Inputs    []abitype.Param
		Anonymous bool
	}
	if err := json.Unmarshal(input, &plain); err != nil {
		return errors.WithStack(err)
	}

	var indexed, nonIndexed []abitype.Param
	for _, param := range plain.Inputs {
		if param.Indexed {
			indexed = append(indexed, param)
		} else {
			nonIndexed = append(nonIndexed, param)
		}
	}

	schema, err := abitype.ParamsSchema(nonIndexed)
	if err != nil {
		return errors.Wrapf(err, "failed to build schema for event %q", plain.Name)
	}

	*self = Event{
		Name:       plain.Name,
		Inputs:     plain.Inputs,
		Anonymous:  plain.Anonymous,
		Topic:      rpctrans.Word(SignatureChecksum(plain.Name, plain.Inputs)),
		indexed:    indexed,
		nonIndexed: nonIndexed,
		schema:     schema,
	}
	return nil
}

/*
Decodes event parameters out of a log entry, mirroring go-ethereum/Parity's
event encoding: non-indexed parameters are ABI-encoded as their own tuple in
"Data"; indexed parameters become 32-byte topics, in declaration order,
following the event's topic at Topics[0]. Fixed-size indexed parameters are
recovered directly; variable-size indexed parameters are irrecoverable
(the topic holds only their hash), and decoding such a field fails.
*/
func (self Event) DecodeLog(entry rpctrans.LogEntry) (abi.Value, error) {
	if self.Anonymous {
		if len(entry.Topics) != len(self.indexed) {
			return abi.Value{}, errors.Errorf(
				"event %q: expected %d indexed topics for an anonymous event, found %d",
				self.Name, len(self.indexed), len(entry.Topics))
		}
	} else {
		if len(entry.Topics) == 0 || entry.Topics[0] != self.Topic {
			return abi.Value{}, errors.Errorf("log entry doesn't match event %q", self.Name)
		}
		if len(entry.Topics)-1 != len(self.indexed) {
			return abi.Value{}, errors.Errorf(
				"event %q: expected %d indexed topics, found %d",
				self.Name, len(self.indexed), len(entry.Topics)-1)
		}
	}

	topics := entry.Topics
	if !self.Anonymous {
		topics = topics[1:]
	}

	items := make([]abi.Value, len(self.Inputs))

	for i, param := range self.indexed {
		fieldSchema, err := param.Schema()
		if err != nil {
			return abi.Value{}, err
		}
		if fieldSchema.IsDynamic() {
			return abi.Value{}, errors.Errorf(
				"event %q: indexed parameter %q of type %q was hashed into its topic and can't be recovered",
				self.Name, param.Name, param.Type)
		}

		val, err := abi.Decoder{}.Decode(topics[i][:], fieldSchema)
		if err != nil {
			return abi.Value{}, err
		}

		idx := inputIndex(self.Inputs, i, true)
		items[idx] = val
	}

	nonIndexedVal, err := abi.Decoder{}.Decode([]byte(entry.Data), self.schema)
	if err != nil {
		return abi.Value{}, err
	}
	for i := range self.nonIndexed {
		idx := inputIndex(self.Inputs, i, false)
		items[idx] = nonIndexedVal.Items[i]
	}

	names := make([]string, len(self.Inputs))
	fieldSchemas := make([]abi.Schema, len(self.Inputs))
	for i, param := range self.Inputs {
		names[i] = param.Name
		fieldSchemas[i] = items[i].Schema
	}

	return abi.Value{Schema: abi.NamedTuple(names, fieldSchemas...), Items: items}, nil
}

// Finds the position of the n-th occurrence (by declaration order) of a
// field matching "indexed" among the event's full, original parameter list.
func inputIndex(inputs []abitype.Param, n int, indexed bool) int {
	for i, param := range inputs {
		if param.Indexed == indexed {
			if n == 0 {
				return i
			}
			n--
		}
	}
	return -1
}

// A parsed JSON ABI: a contract's functions and events, keyed by name.
// Unrecognized entries (constructors, fallback/receive) are skipped.
type Contract struct {
	Functions map[string]Function
	Events    map[string]Event
}

// Parses a JSON ABI array, as produced by solc or exposed by a block
// explorer.
func ParseContract(input []byte) (Contract, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(input, &entries); err != nil {
		return Contract{}, errors.WithStack(err)
	}

	out := Contract{Functions: map[string]Function{}, Events: map[string]Event{}}

	for _, entry := range entries {
		var tag struct{ Type string }
		if err := json.Unmarshal(entry, &tag); err != nil {
			return Contract{}, errors.WithStack(err)
		}

		switch tag.Type {
		case "function", "":
			var fn Function
			if err := json.Unmarshal(entry, &fn); err != nil {
				return Contract{}, err
			}
			out.Functions[fn.Name] = fn

		case "event":
			var ev Event
			if err := json.Unmarshal(entry, &ev); err != nil {
				return Contract{}, err
			}
			out.Events[ev.Name] = ev

		default:
			// Constructors, fallback/receive: nothing to decode.
		}
	}

	return out, nil
}
