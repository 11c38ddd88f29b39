// Package converter turns converter declarations of inputs and outputs into
// callable converters.
//
// An entry declares its converter either by name ([String], [Float],
// [Integer], [Boolean]) or by supplying a custom function. [ResolveInput]
// and [ResolveOutput] normalize both forms into a single function value; an
// unknown name fails with [ErrUnknownConverter].
package converter
