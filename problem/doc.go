// Package problem defines the shared Travelling Salesman problem model:
// a fixed set of named cities, a designated start city, and a symmetric
// distance lookup over city pairs.
//
// Conventions:
//   - The city set and all distances are immutable after New.
//   - City enumeration order is insertion order from the constructing
//     edge list (first appearance wins).
//   - A distance of math.Inf(1) signals “no direct edge”; the model never
//     stores NaN or negative weights.
//   - A tour is an open permutation of all cities; its cost includes the
//     implicit closing edge back to the first city.
//
// All operations are side-effect free and return sentinel errors from
// types.go; the package never logs and never panics on user input.
package problem
