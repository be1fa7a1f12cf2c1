// Package conv provides overflow-aware integer arithmetic and conversion utilities.
//
// Fragment capacities are computed from the previous capacity by multiplication,
// so every growth step goes through these helpers instead of plain operators.
// On overflow the result saturates at math.MaxInt and the caller is told so.
//
// For arithmetic that is provably safe by domain constraints (e.g., loop
// indices, bounded counters), use plain operators instead to avoid overhead.
package conv
