package abitype

import "github.com/purelabio/abi"

/*
Mirrors one entry of a JSON ABI parameter list, the shape a Solidity compiler
emits for a function's inputs/outputs or an event's fields:

	{"name": "to", "type": "address"}
	{"name": "amounts", "type": "tuple[]", "components": [...]}

"Indexed" is only meaningful for event fields; it's ignored when building a
Schema, but the orchestration layer in the "contract" package uses it to
decide whether a field is encoded in the log data or in a topic.
*/
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
	Indexed    bool    `json:"indexed,omitempty"`
}

// Builds the Schema this parameter describes, resolving tuple components
// recursively.
func (self Param) Schema() (abi.Schema, error) {
	return parse(self.Type, self.Components)
}

// Builds a Schema for an ordered list of parameters, as a tuple. Used for a
// function's whole input or output list.
func ParamsSchema(params []Param) (abi.Schema, error) {
	fields := make([]abi.Schema, len(params))
	names := make([]string, len(params))
	for i, param := range params {
		field, err := param.Schema()
		if err != nil {
			return abi.Schema{}, err
		}
		fields[i] = field
		names[i] = param.Name
	}
	return abi.NamedTuple(names, fields...), nil
}
