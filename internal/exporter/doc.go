// Package exporter provides CSV export functionality for cleaned event
// datasets, including streaming writes for large catalogs and UTF-8 BOM
// prefixes for Excel compatibility.
package exporter
