package moveargs

// EntryFunctionCall is a fully serialized call of an entry function.
// EntryFunctionCall is immutable - modifier methods return new instances.
type EntryFunctionCall struct {
	module     ModuleID
	function   string
	typeArgs   []TypeTag
	paramTypes []TypeTag
	args       [][]byte
}

// NewEntryFunctionCall serializes args against paramTypes. The number of
// args must match the number of parameter types; a failing argument is
// reported as *ArgumentError.
func NewEntryFunctionCall(module ModuleID, function string, typeArgs, paramTypes []TypeTag, args ...any) (*EntryFunctionCall, error) {
	if len(args) != len(paramTypes) {
		return nil, &ArgumentError{
			Function: function,
			Index:    len(args),
			Err:      ErrArgumentCount,
		}
	}

	encoded := make([][]byte, len(args))
	for i, arg := range args {
		b, err := SerializeArgToBytes(arg, paramTypes[i])
		if err != nil {
			return nil, &ArgumentError{
				Function: function,
				Index:    i,
				Err:      err,
			}
		}
		encoded[i] = b
	}

	return &EntryFunctionCall{
		module:     module,
		function:   function,
		typeArgs:   append([]TypeTag(nil), typeArgs...),
		paramTypes: append([]TypeTag(nil), paramTypes...),
		args:       encoded,
	}, nil
}

// Module returns the target module.
func (c *EntryFunctionCall) Module() ModuleID {
	return c.module
}

// Function returns the function name.
func (c *EntryFunctionCall) Function() string {
	return c.function
}

// FullName returns "0x1::coin::transfer".
func (c *EntryFunctionCall) FullName() string {
	return c.module.String() + "::" + c.function
}

// TypeArgs returns the type arguments.
func (c *EntryFunctionCall) TypeArgs() []TypeTag {
	return append([]TypeTag(nil), c.typeArgs...)
}

// ParamTypes returns the resolved parameter types.
func (c *EntryFunctionCall) ParamTypes() []TypeTag {
	return append([]TypeTag(nil), c.paramTypes...)
}

// Args returns the BCS encoded arguments.
func (c *EntryFunctionCall) Args() [][]byte {
	out := make([][]byte, len(c.args))
	for i, a := range c.args {
		out[i] = append([]byte(nil), a...)
	}
	return out
}

// WithArg replaces argument i with value, returning a new call.
// Useful when a single form field changes.
func (c *EntryFunctionCall) WithArg(i int, value any) (*EntryFunctionCall, error) {
	if i < 0 || i >= len(c.args) {
		return nil, &ArgumentError{Function: c.function, Index: i, Err: ErrArgumentCount}
	}
	b, err := SerializeArgToBytes(value, c.paramTypes[i])
	if err != nil {
		return nil, &ArgumentError{Function: c.function, Index: i, Err: err}
	}
	clone := c.clone()
	clone.args[i] = b
	return clone, nil
}

// Payload returns the entry function payload for this call.
func (c *EntryFunctionCall) Payload() *EntryFunctionPayload {
	return &EntryFunctionPayload{
		Module:   c.module,
		Function: c.function,
		TypeArgs: c.TypeArgs(),
		Args:     c.Args(),
	}
}

// clone creates a copy of the call with its own args slice.
func (c *EntryFunctionCall) clone() *EntryFunctionCall {
	clone := *c
	clone.args = make([][]byte, len(c.args))
	copy(clone.args, c.args)
	return &clone
}
