// Package bench measures strand variants against each other on real DNA.
//
// Two benchmarks are run for every selected variant:
//   - splice: CutAndSplice with splicees of doubling length, which stresses
//     Append on large results
//   - scan: sequential CharAt over a strand built from many appends, which
//     stresses indexed access across segments
//
// A Report carries one Result per measurement and can be written as an
// aligned text table, JSON, or YAML.
package bench
