// Package polygen generates random multivariate polynomial instances whose
// naive-evaluation constraint count equals a requested difficulty exactly.
//
// The pipeline chooses a shape (monomial count m, variable count n) from the
// difficulty, samples per-monomial degree budgets summing to delta+m,
// distributes each budget across the variables as a row of the exponent
// matrix, draws nonzero coefficients and re-verifies the baseline cost
// before returning. All randomness flows from a single explicitly threaded
// source, so a fixed seed reproduces the instance bit for bit.
package polygen
