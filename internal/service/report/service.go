package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/report"
	"github.com/protrack-ops/floor-backend-go/internal/pkg/share"
)

const (
	defaultFilenamePrefix = "ProTrack_Archive"
	// utf8BOM makes spreadsheet tools decode the CSV as UTF-8; line names
	// and downtime reasons are often written in Arabic on the floor.
	utf8BOM = "\uFEFF"
)

var archiveHeader = []string{
	"Date", "Line", "Shift", "Output", "Target", "Rejects", "Efficiency %", "Downtime Reason",
}

type ReportServiceImpl struct {
	productionSvc  production.Service
	attendanceSvc  attendance.Service
	filenamePrefix string
}

func NewReportService(productionSvc production.Service, attendanceSvc attendance.Service, filenamePrefix string) report.Service {
	if filenamePrefix == "" {
		filenamePrefix = defaultFilenamePrefix
	}
	return &ReportServiceImpl{
		productionSvc:  productionSvc,
		attendanceSvc:  attendanceSvc,
		filenamePrefix: filenamePrefix,
	}
}

// ArchiveCSV implements report.Service.
func (s *ReportServiceImpl) ArchiveCSV(ctx context.Context) (*report.Export, error) {
	entries, err := s.productionSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"ProTrack Production Archive"},
		{"Exported", time.Now().Format("2006-01-02")},
		{},
	}
	rows = append(rows, summaryRows(entries)...)
	rows = append(rows, [][]string{{}, archiveHeader}...)
	for _, e := range entries {
		rows = append(rows, entryRow(e))
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return &report.Export{
		Filename:    fmt.Sprintf("%s_%s.csv", s.filenamePrefix, time.Now().Format("2006-01-02")),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// ArchiveXLSX implements report.Service.
func (s *ReportServiceImpl) ArchiveXLSX(ctx context.Context) (*report.Export, error) {
	entries, err := s.productionSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Archive"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range archiveHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, e := range entries {
		for i, value := range entryRow(e) {
			cell := fmt.Sprintf("%c%d", 'A'+i, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &report.Export{
		Filename:    fmt.Sprintf("%s_%s.xlsx", s.filenamePrefix, time.Now().Format("2006-01-02")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// ShareAttendance implements report.Service.
func (s *ReportServiceImpl) ShareAttendance(ctx context.Context, date string) (*report.AttendanceShare, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	summary, err := s.attendanceSvc.Summarize(ctx, date)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"Attendance %s: %d/%d present (%d%%), %d absent, %d on leave or mission.",
		summary.Date, summary.Present, summary.Total, summary.Percent, summary.Absent, summary.Others,
	)

	return &report.AttendanceShare{
		Date:    date,
		Message: message,
		Link:    share.WhatsAppLink("", message),
	}, nil
}

// ShareProduction implements report.Service.
func (s *ReportServiceImpl) ShareProduction(ctx context.Context, entryID string) (*report.ProductionShare, error) {
	e, err := s.productionSvc.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Production Report %s %s %s", e.Date, e.LineID, e.Shift)

	var b strings.Builder
	fmt.Fprintf(&b, "Production report for %s, %s shift on %s.\n", e.LineID, e.Shift, e.Date)
	fmt.Fprintf(&b, "Leader: %s\n", e.LeaderName)
	fmt.Fprintf(&b, "Output: %d / %d (%d%%), rejects %d.", e.TotalOutput, e.TotalTarget, e.Efficiency, e.TotalRejects)
	if e.DowntimeReason != nil && *e.DowntimeReason != "" {
		fmt.Fprintf(&b, "\nDowntime: %s", *e.DowntimeReason)
	}
	body := b.String()

	return &report.ProductionShare{
		Subject:  subject,
		Body:     body,
		Mailto:   share.MailtoLink("", subject, body),
		WhatsApp: share.WhatsAppLink("", subject+"\n"+body),
	}, nil
}

func summaryRows(entries []production.EntryResponse) [][]string {
	var output, target, rejects int
	perLine := make(map[production.Line][2]int)
	for _, e := range entries {
		output += e.TotalOutput
		target += e.TotalTarget
		rejects += e.TotalRejects
		acc := perLine[e.LineID]
		acc[0] += e.TotalOutput
		acc[1] += e.TotalTarget
		perLine[e.LineID] = acc
	}

	efficiency := 0
	if target > 0 {
		efficiency = int(math.Round(float64(output) / float64(target) * 100))
	}

	rows := [][]string{
		{"Entries", fmt.Sprintf("%d", len(entries))},
		{"Total Output", fmt.Sprintf("%d", output)},
		{"Total Target", fmt.Sprintf("%d", target)},
		{"Total Rejects", fmt.Sprintf("%d", rejects)},
		{"Overall Efficiency %", fmt.Sprintf("%d", efficiency)},
		{},
		{"Line", "Output", "Target"},
	}
	for _, line := range production.Lines {
		acc, ok := perLine[line]
		if !ok {
			continue
		}
		rows = append(rows, []string{string(line), fmt.Sprintf("%d", acc[0]), fmt.Sprintf("%d", acc[1])})
	}
	return rows
}

func entryRow(e production.EntryResponse) []string {
	reason := ""
	if e.DowntimeReason != nil {
		reason = *e.DowntimeReason
	}
	return []string{
		e.Date,
		string(e.LineID),
		string(e.Shift),
		fmt.Sprintf("%d", e.TotalOutput),
		fmt.Sprintf("%d", e.TotalTarget),
		fmt.Sprintf("%d", e.TotalRejects),
		fmt.Sprintf("%d", e.Efficiency),
		reason,
	}
}
