// Package cleaning implements the record cleaning and normalization stage
// for the USGS earthquake catalog.
//
// # Architecture
//
// The pipeline is a strictly linear sequence of stages, each consuming and
// returning the event slice together with a structured summary:
//
//  1. Timestamp normalization: derive year, decade and month from parsed
//     timestamps (timestamps.go)
//  2. Deduplication: first-occurrence-wins on event ID, with a composite
//     key fallback for rows without one (dedup.go)
//  3. Completeness filter: drop rows missing any critical field
//     (completeness.go)
//  4. Range validation: inclusive physical-plausibility bounds for
//     magnitude, depth and coordinates (rangecheck.go)
//  5. Export: clean CSV plus text and PDF report artifacts
//     (report.go, pdf.go)
//
// The Pipeline type in pipeline.go drives the sequence as a simple state
// machine. Per-record problems are coerced to absent values or row drops
// and never abort a run; only a missing input file or an unwritable output
// is fatal.
//
// # Usage
//
//	p := cleaning.NewPipeline(cfg.Cleaning, logger)
//	summary, err := p.Execute(ctx, paths.RawCSV, paths.CleanCSV, paths.CleaningReportTXT)
//	if err != nil {
//	    log.Fatal(err)
//	}
package cleaning
