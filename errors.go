package moveargs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for argument and type tag failures. The messages are shown
// to users next to the offending input field, so they are kept short and stable.
var (
	// ErrInvalidTypeTag indicates a type tag with malformed structure: missing
	// segments, unbalanced angle brackets, unknown keywords or empty input.
	ErrInvalidTypeTag = errors.New("Invalid type tag.")

	// ErrUnrecognizedToken indicates type tag text the lexer cannot tokenize,
	// such as a bad hex address or a single colon separator.
	ErrUnrecognizedToken = errors.New("Unrecognized token.")

	// ErrInvalidArg is matched by every *InvalidArgError.
	ErrInvalidArg = errors.New("Invalid arg")

	// ErrInvalidNumberString indicates a string that is not a base-10 integer.
	ErrInvalidNumberString = errors.New("Invalid number string.")

	// ErrInvalidBooleanString indicates a string other than "true" or "false".
	ErrInvalidBooleanString = errors.New("Invalid boolean string.")

	// ErrCannotConvert is matched by every *ConversionError.
	ErrCannotConvert = errors.New("Cannot convert value to a BigInt")

	// ErrInvalidAccountAddress indicates a malformed or wrongly typed address.
	ErrInvalidAccountAddress = errors.New("Invalid account address.")

	// ErrInvalidVectorArg indicates a vector argument of the wrong shape.
	ErrInvalidVectorArg = errors.New("Invalid vector args.")

	// ErrUnsupportedStructArg indicates a struct argument other than 0x1::string::String.
	ErrUnsupportedStructArg = errors.New("The only supported struct arg is of type 0x1::string::String")

	// ErrUnsupportedArgType indicates a type tag the BCS serializer cannot encode.
	ErrUnsupportedArgType = errors.New("Unsupported arg type.")

	// ErrUnknownTransactionArgumentType indicates a type tag with no TransactionArgument variant.
	ErrUnknownTransactionArgumentType = errors.New("Unknown type for TransactionArgument.")

	// ErrInvalidModuleID indicates a module id that is not of the form address::name.
	ErrInvalidModuleID = errors.New("moveargs: invalid module id")

	// ErrNotEntryFunction indicates the function cannot be called from a transaction.
	ErrNotEntryFunction = errors.New("moveargs: function is not an entry function")

	// ErrArgumentCount indicates the number of arguments doesn't match the parameters.
	ErrArgumentCount = errors.New("moveargs: wrong number of arguments")

	// ErrTypeArgumentCount indicates the number of type arguments doesn't match
	// the function's generic type parameters.
	ErrTypeArgumentCount = errors.New("moveargs: wrong number of type arguments")
)

// ParseError reports where in a type tag string parsing failed.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("moveargs: type tag %q at offset %d: %v", e.Input, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidArgError indicates a value whose Go type doesn't match any of the
// accepted shapes for the target type.
type InvalidArgError struct {
	Value any
	Types []string
}

func (e *InvalidArgError) Error() string {
	return fmt.Sprintf("Invalid arg: %v type should be %s", e.Value, strings.Join(e.Types, " or "))
}

func (e *InvalidArgError) Is(target error) bool {
	return target == ErrInvalidArg
}

// ConversionError indicates a value that cannot be converted to a big integer.
type ConversionError struct {
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Cannot convert %v to a BigInt", e.Value)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrCannotConvert
}

// ArgumentError indicates an issue with one argument of an entry function call.
type ArgumentError struct {
	Function string
	Index    int
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("moveargs: argument %d for function %q: %v", e.Index, e.Function, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FunctionNotFoundError indicates the module doesn't expose the requested function.
type FunctionNotFoundError struct {
	Module   ModuleID
	Function string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("moveargs: function %q not found in module %s", e.Function, e.Module)
}
