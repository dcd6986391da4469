package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/branched-services/go-moveargs"
)

// callFile is the YAML description of an entry function call.
//
//	module: 0x1::coin
//	function: transfer
//	type_args: ["0x1::aptos_coin::AptosCoin"]
//	params: [address, u64]
//	args: ["0x2", 1000]
//
// params may be omitted when an ABI is supplied.
type callFile struct {
	Module   string        `yaml:"module"`
	Function string        `yaml:"function"`
	TypeArgs []string      `yaml:"type_args"`
	Params   []string      `yaml:"params"`
	Args     []interface{} `yaml:"args"`
}

func readCallFile(path string) (*callFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading call file: %w", err)
	}

	var cf callFile
	if err := yaml.UnmarshalStrict(data, &cf); err != nil {
		return nil, fmt.Errorf("decoding call file %s: %w", path, err)
	}
	if cf.Function == "" {
		return nil, fmt.Errorf("call file %s: function is required", path)
	}

	for i, arg := range cf.Args {
		if cf.Args[i], err = normalizeYAML(arg); err != nil {
			return nil, fmt.Errorf("call file %s: argument %d: %w", path, i, err)
		}
	}
	return &cf, nil
}

// normalizeYAML turns single-key maps such as {hex: "0x0102"} into the value
// ParseEntry produces for that mode and recurses into lists.
func normalizeYAML(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		if len(val) != 1 {
			return nil, fmt.Errorf("entry map must have exactly one key, got %d", len(val))
		}
		for k, raw := range val {
			mode, err := moveargs.ParseEntryMode(fmt.Sprint(k))
			if err != nil {
				return nil, err
			}
			text, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%s entry must be a string", mode)
			}
			return moveargs.ParseEntry(text, mode)
		}

	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			n, err := normalizeYAML(elem)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	return v, nil
}

// buildCall builds the call from an ABI when one is given, otherwise from the
// params listed in the file.
func (cf *callFile) buildCall(module *moveargs.Module) (*moveargs.EntryFunctionCall, error) {
	if module != nil {
		if cf.Module != "" {
			id, err := moveargs.ParseModuleID(cf.Module)
			if err != nil {
				return nil, err
			}
			if id != module.ID() {
				return nil, fmt.Errorf("call file targets %s but the ABI is for %s", id, module.ID())
			}
		}
		return module.Invoke(cf.Function, cf.TypeArgs, cf.Args...)
	}

	id, err := moveargs.ParseModuleID(cf.Module)
	if err != nil {
		return nil, err
	}

	typeArgs := make([]moveargs.TypeTag, len(cf.TypeArgs))
	for i, s := range cf.TypeArgs {
		if typeArgs[i], err = moveargs.ParseTypeTag(s); err != nil {
			return nil, fmt.Errorf("type argument %d: %w", i, err)
		}
	}

	params := make([]moveargs.TypeTag, len(cf.Params))
	for i, s := range cf.Params {
		if params[i], err = moveargs.ParseTypeTag(s, moveargs.WithTypeArgs(typeArgs...)); err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
	}

	return moveargs.NewEntryFunctionCall(id, cf.Function, typeArgs, params, cf.Args...)
}
