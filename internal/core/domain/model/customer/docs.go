// Package customer provides the Customer aggregate and its embedded Address
// value object.
//
// Key business rules:
//   - Email must have a well-formed local@domain shape
//   - Address fields are all mandatory and length-bounded; country code is
//     exactly two letters
//   - Account balance can never go negative
//   - Uniqueness of customer code, email, and phone is a commit-time concern
//     of the persistence layer, not of the aggregate
//
// The aggregate stores only a password hash; hashing happens in the
// application layer before construction.
package customer
