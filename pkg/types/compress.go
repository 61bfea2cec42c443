// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Quality selects a Ghostscript pdfwrite quality preset.
type Quality string

const (
	QualityScreen   Quality = "screen"
	QualityEbook    Quality = "ebook"
	QualityPrinter  Quality = "printer"
	QualityPrepress Quality = "prepress"
	QualityDefault  Quality = "default"
)

// CompressionStats holds the outcome of a compression run.
type CompressionStats struct {
	OriginalBytes   int64 `json:"original_bytes" yaml:"original_bytes"`
	CompressedBytes int64 `json:"compressed_bytes" yaml:"compressed_bytes"`
}

const bytesPerMB = 1024 * 1024

// OriginalMB returns the input size in megabytes.
func (s CompressionStats) OriginalMB() float64 {
	return float64(s.OriginalBytes) / bytesPerMB
}

// CompressedMB returns the output size in megabytes.
func (s CompressionStats) CompressedMB() float64 {
	return float64(s.CompressedBytes) / bytesPerMB
}

// ReductionPct returns the size reduction as a percentage of the original.
// A zero-byte original yields 0.
func (s CompressionStats) ReductionPct() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.OriginalBytes-s.CompressedBytes) / float64(s.OriginalBytes) * 100
}
