// Package charts builds the visualization workbook for a cleaned
// earthquake dataset.
//
// Each figure is an Excel chart embedded next to the sheet that holds
// its data, so the numbers behind every chart stay inspectable:
//
//   - Magnitude histogram (0.5-unit bins)
//   - Depth histogram (50 km bins)
//   - Events per year and average magnitude per year (line)
//   - Mean magnitude by decade (column)
//   - Depth vs magnitude scatter on a deterministic sample
//   - Most active regions (bar)
//
// The scatter sample is seeded so repeated runs over the same dataset
// produce identical workbooks.
package charts
