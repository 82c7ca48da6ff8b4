package report

import "context"

type Service interface {
	// ArchiveCSV exports the full production archive as UTF-8 CSV with a BOM
	// so spreadsheet tools pick up the encoding.
	ArchiveCSV(ctx context.Context) (*Export, error)
	// ArchiveXLSX exports the same archive as an Excel workbook.
	ArchiveXLSX(ctx context.Context) (*Export, error)
	// ShareAttendance builds a day's attendance digest plus WhatsApp link.
	ShareAttendance(ctx context.Context, date string) (*AttendanceShare, error)
	// ShareProduction builds share links for one archive entry.
	ShareProduction(ctx context.Context, entryID string) (*ProductionShare, error)
}
