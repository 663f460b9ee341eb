// Package bytecode defines the compiled form of a list declaration.
//
// A Program is a flat stream of four instructions, PUSH, POP, VALUE and
// SET, plus a data blob. VALUE and SET carry a byte offset into the blob:
// SET's offset names a property (UTF-8, zero terminated), VALUE's offset
// points at a one byte Tag followed by the scalar's text and a zero byte.
//
// Buffers produced by Bytes are meant to be decoded in the same process by
// the matching decoder; there is no version field and no compatibility
// promise.
package bytecode
