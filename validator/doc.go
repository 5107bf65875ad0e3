// Package validator flattens validation failures into ordered field
// violations suitable for a response envelope's details.
//
// Each violation carries the location of the offending field as a path of
// JSON names and slice indices, and a human-readable message:
//
//	{"loc": ["addresses", 0, "street"], "msg": "The field 'street' is required."}
//
// Violations preserve the order the validator reports failures in, which is
// struct field declaration order.
package validator
