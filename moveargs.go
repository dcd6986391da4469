// Package moveargs parses Move type tags and serializes user supplied values
// into on-chain transaction arguments.
//
// It covers the step between a form field and a signed transaction: the
// declared parameter type arrives as a string, the value arrives as whatever
// the user typed, and the chain expects canonical BCS bytes.
//
// # Basic Usage
//
// Parse a type tag and serialize a value against it:
//
//	tag, err := moveargs.ParseTypeTag("vector<u64>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := moveargs.SerializeArgToBytes([]string{"1", "18446744073709551615"}, tag)
//
// Or build a whole entry function payload from a module ABI:
//
//	coin := moveargs.MustParseModuleABI(coinABIJSON)
//	call, err := coin.Invoke("transfer", []string{"0x1::aptos_coin::AptosCoin"}, "0x2", 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	payload := call.Payload().Hex()
//
// # Type Tags
//
// TypeTag is a closed set of variants:
//
//   - Primitive: bool, u8, u16, u32, u64, u128, u256, address and signer
//   - *VectorTag: vector<T>
//   - *StructTag: address::module::name<T1, T2, ...>
//
// Generic placeholders (T0, T1, ...) are resolved with WithTypeArgs.
//
// # Arguments
//
// SerializeArg writes BCS bytes. ArgToTransactionArgument produces the
// typed TransactionArgument used by script transactions. EnsureBoolean,
// EnsureNumber and EnsureBigInt expose the coercions both rely on.
//
// Every function in this package is synchronous and keeps no state between
// calls, so all of them are safe for concurrent use.
package moveargs
