/*
A CLI tool that decodes ABI-encoded hex data against a Solidity type,
a JSON ABI parameter list, or a specific function's outputs, and prints the
decoded value tree.

Example usage:

	abidecode -type uint256 -data 0x0000...002a
	abidecode -params params.json -data 0x...
	abidecode -abi MyToken.json -fn balanceOf -data 0x...

Exactly one of "-type", "-params" or "-abi" must be given.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/mitranim/repr"
	"github.com/pkg/errors"

	"github.com/purelabio/abi"
	"github.com/purelabio/abi/abitype"
	"github.com/purelabio/abi/contract"
)

var (
	flagData   = flag.String("data", "", "ABI-encoded hex data to decode, with or without a leading 0x (required)")
	flagType   = flag.String("type", "", "a single Solidity type string, such as \"uint256\" or \"address[]\"")
	flagParams = flag.String("params", "", "path to a JSON file containing a JSON ABI parameter list, decoded as a tuple")
	flagAbi    = flag.String("abi", "", "path to a JSON ABI file")
	flagFn     = flag.String("fn", "", "function name to decode output for; requires -abi")
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %v:

	%v -data <hex> [-type <solidity type> | -params <path> | -abi <path> -fn <name>]

`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagData == "" {
		return errors.New("missing required flag: -data")
	}

	schema, err := schemaFromFlags()
	if err != nil {
		return err
	}

	val, err := abi.DecodeHex(*flagData, schema)
	if err != nil {
		return err
	}

	fmt.Println(repr.String(val))
	return nil
}

func schemaFromFlags() (abi.Schema, error) {
	switch {
	case *flagType != "":
		return abitype.Parse(*flagType)

	case *flagParams != "":
		input, err := ioutil.ReadFile(*flagParams)
		if err != nil {
			return abi.Schema{}, errors.WithStack(err)
		}

		var params []abitype.Param
		if err := json.Unmarshal(input, &params); err != nil {
			return abi.Schema{}, errors.WithStack(err)
		}

		return abitype.ParamsSchema(params)

	case *flagAbi != "":
		if *flagFn == "" {
			return abi.Schema{}, errors.New("-abi requires -fn")
		}

		input, err := ioutil.ReadFile(*flagAbi)
		if err != nil {
			return abi.Schema{}, errors.WithStack(err)
		}

		parsed, err := contract.ParseContract(input)
		if err != nil {
			return abi.Schema{}, err
		}

		fn, ok := parsed.Functions[*flagFn]
		if !ok {
			return abi.Schema{}, errors.Errorf("no function named %q in ABI", *flagFn)
		}

		return abitype.ParamsSchema(fn.Outputs)

	default:
		return abi.Schema{}, errors.New("exactly one of -type, -params or -abi is required")
	}
}
