package moveargs

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/branched-services/go-moveargs/bcs"
)

// ModuleID identifies a published module, e.g. 0x1::coin.
type ModuleID struct {
	Address AccountAddress
	Name    string
}

// ParseModuleID parses "address::name".
func ParseModuleID(s string) (ModuleID, error) {
	addr, name, ok := strings.Cut(strings.TrimSpace(s), "::")
	if !ok || name == "" || strings.Contains(name, "::") {
		return ModuleID{}, ErrInvalidModuleID
	}
	a, err := ParseAccountAddress(addr)
	if err != nil {
		return ModuleID{}, fmt.Errorf("%w: %v", ErrInvalidModuleID, err)
	}
	return ModuleID{Address: a, Name: name}, nil
}

// String returns "0x1::coin".
func (m ModuleID) String() string {
	return m.Address.ShortString() + "::" + m.Name
}

// Serialize writes the address followed by the module name.
func (m ModuleID) Serialize(s *bcs.Serializer) {
	m.Address.Serialize(s)
	s.Str(m.Name)
}

// MoveModuleABI is the JSON ABI of a module as served by a fullnode REST API.
type MoveModuleABI struct {
	Address          string         `json:"address"`
	Name             string         `json:"name"`
	Friends          []string       `json:"friends,omitempty"`
	ExposedFunctions []MoveFunction `json:"exposed_functions"`
}

// MoveFunction is one exposed function of a module ABI.
type MoveFunction struct {
	Name              string             `json:"name"`
	Visibility        string             `json:"visibility"`
	IsEntry           bool               `json:"is_entry"`
	IsView            bool               `json:"is_view,omitempty"`
	GenericTypeParams []GenericTypeParam `json:"generic_type_params"`
	Params            []string           `json:"params"`
	Return            []string           `json:"return"`
}

// GenericTypeParam lists the ability constraints of a type parameter.
type GenericTypeParam struct {
	Constraints []string `json:"constraints"`
}

// ArgumentParams returns the params a caller must supply, skipping leading
// signer parameters which the transaction sender fills in.
func (f MoveFunction) ArgumentParams() []string {
	i := 0
	for i < len(f.Params) && isSignerParam(f.Params[i]) {
		i++
	}
	return f.Params[i:]
}

func isSignerParam(p string) bool {
	p = strings.TrimSpace(p)
	return p == "signer" || p == "&signer"
}

// Module wraps a module ABI for building entry function calls.
type Module struct {
	id        ModuleID
	functions map[string]MoveFunction
}

// NewModule creates a Module from a decoded ABI.
func NewModule(abi MoveModuleABI) (*Module, error) {
	id, err := ParseModuleID(abi.Address + "::" + abi.Name)
	if err != nil {
		return nil, err
	}
	m := &Module{
		id:        id,
		functions: make(map[string]MoveFunction, len(abi.ExposedFunctions)),
	}
	for _, f := range abi.ExposedFunctions {
		m.functions[f.Name] = f
	}
	return m, nil
}

// ParseModuleABI parses a JSON module ABI.
func ParseModuleABI(abiJSON string) (*Module, error) {
	var abi MoveModuleABI
	if err := json.Unmarshal([]byte(abiJSON), &abi); err != nil {
		return nil, fmt.Errorf("moveargs: decoding module abi: %w", err)
	}
	return NewModule(abi)
}

// MustParseModuleABI is like ParseModuleABI but panics on error.
func MustParseModuleABI(abiJSON string) *Module {
	m, err := ParseModuleABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the module id.
func (m *Module) ID() ModuleID {
	return m.id
}

// Function returns the named function ABI.
func (m *Module) Function(name string) (MoveFunction, bool) {
	f, ok := m.functions[name]
	return f, ok
}

// EntryFunctionNames returns the names of all entry functions, sorted.
func (m *Module) EntryFunctionNames() []string {
	names := make([]string, 0, len(m.functions))
	for name, f := range m.functions {
		if f.IsEntry {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Invoke builds a call of the named entry function. typeArgs are type tag
// strings for the function's generic parameters; args are Go values
// accepted by SerializeArg, one per non-signer parameter.
func (m *Module) Invoke(function string, typeArgs []string, args ...any) (*EntryFunctionCall, error) {
	f, ok := m.functions[function]
	if !ok {
		return nil, &FunctionNotFoundError{Module: m.id, Function: function}
	}
	if !f.IsEntry {
		return nil, ErrNotEntryFunction
	}
	if len(typeArgs) != len(f.GenericTypeParams) {
		return nil, ErrTypeArgumentCount
	}

	tags := make([]TypeTag, len(typeArgs))
	for i, ta := range typeArgs {
		tag, err := ParseTypeTag(ta)
		if err != nil {
			return nil, fmt.Errorf("moveargs: type argument %d for function %q: %w", i, function, err)
		}
		tags[i] = tag
	}

	params := f.ArgumentParams()
	paramTypes := make([]TypeTag, len(params))
	for i, p := range params {
		tag, err := ParseTypeTag(p, WithTypeArgs(tags...))
		if err != nil {
			return nil, &ArgumentError{Function: function, Index: i, Err: err}
		}
		paramTypes[i] = tag
	}

	return NewEntryFunctionCall(m.id, function, tags, paramTypes, args...)
}

// MustInvoke is like Invoke but panics on error.
func (m *Module) MustInvoke(function string, typeArgs []string, args ...any) *EntryFunctionCall {
	call, err := m.Invoke(function, typeArgs, args...)
	if err != nil {
		panic(err)
	}
	return call
}
