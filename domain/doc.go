// Package domain defines the value types a DNS message is made of: the
// header with its flags bitfield, domain names as sequences of wire
// elements, questions, resource records, and the enumerations (RRType,
// RRClass, RCode, OpCode) with their byte mappings.
//
// These types carry no behavior beyond field access, validation helpers,
// and wire-length accounting. Decoding and encoding live in the codec
// package; zero-copy references live in wireref.
package domain
