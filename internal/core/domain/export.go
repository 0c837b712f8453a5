package domain

const unknownDescription = "Unknown"

// ExportFormat identifies a file format the engine writes directly when
// exporting results. The engine formats the file itself; results are not
// reformatted on the way through.
type ExportFormat string

// Available export formats.
const (
	// ExportCSV is comma-separated values.
	ExportCSV ExportFormat = "csv"

	// ExportTSV is tab-separated values.
	ExportTSV ExportFormat = "tsv"

	// ExportTXT is plain text, one full path per line.
	ExportTXT ExportFormat = "txt"

	// ExportEFU is the Everything file-list format.
	ExportEFU ExportFormat = "efu"

	// ExportM3U is an M3U playlist.
	ExportM3U ExportFormat = "m3u"

	// ExportM3U8 is a UTF-8 M3U playlist.
	ExportM3U8 ExportFormat = "m3u8"
)

// IsValid returns true if the export format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportCSV, ExportTSV, ExportTXT, ExportEFU, ExportM3U, ExportM3U8:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportCSV:
		return "CSV (comma-separated values)"
	case ExportTSV:
		return "TSV (tab-separated values)"
	case ExportTXT:
		return "Plain text (one path per line)"
	case ExportEFU:
		return "EFU (Everything file list)"
	case ExportM3U:
		return "M3U playlist"
	case ExportM3U8:
		return "M3U8 playlist (UTF-8)"
	default:
		return unknownDescription
	}
}

// AllExportFormats returns all available export formats.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		ExportCSV,
		ExportTSV,
		ExportTXT,
		ExportEFU,
		ExportM3U,
		ExportM3U8,
	}
}
