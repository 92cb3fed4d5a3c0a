// Package unsafebytes contains allocation free conversions between bytes,
// strings and the numeric literal forms the lexer validates up front.
package unsafebytes

import (
	"strconv"
	"unsafe"
)

func BytesToString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func StringToBytes(str string) []byte {
	return *(*[]byte)(unsafe.Pointer(&str))
}

// StringToInt32 parses a validated int literal; the lexer guarantees the
// literal fits int32, so the error is discarded.
func StringToInt32(str string) int32 {
	out, _ := strconv.ParseInt(str, 10, 32)
	return int32(out)
}

// StringToFloat64 parses a validated float literal.
func StringToFloat64(str string) float64 {
	out, _ := strconv.ParseFloat(str, 64)
	return out
}
