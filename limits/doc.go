// Package limits centralizes the size limits applied to data handed to
// mediacore across the C boundary.
//
// # Limits
//
//   - MaxPropertyKey (256 bytes): longest accepted property key.
//   - MaxStringValue (64 KiB): longest accepted string property value.
//   - MaxBufferValue (16 MiB): largest accepted raw byte property value.
//   - MaxSampleElements (64 Mi elements): largest sample buffer that can
//     be allocated through the boundary.
//
// # Validation Functions
//
// Each validator returns nil or an error wrapping ErrTooLarge or
// ErrNegativeSize with the offending and maximum sizes:
//
//	if err := limits.ValidateKey(key); err != nil {
//	    // discard the operation
//	}
//
// For custom limits use ValidateSize directly:
//
//	err := limits.ValidateSize(n, 4096)
//
// Foreign callers cannot receive Go errors, so the C boundary logs the
// error and discards the operation.
package limits
