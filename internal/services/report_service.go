package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"estate-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders the rent roll: one row per property with the
// current rent-cycle and lease status.
type ReportService struct {
	Dashboard *DashboardService
}

func NewReportService(dashboard *DashboardService) *ReportService {
	return &ReportService{Dashboard: dashboard}
}

// RentRollPDF builds the rent-roll report as a PDF document.
func (s *ReportService) RentRollPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.Dashboard.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.Dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Rent Roll Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(277, 8, "Portfolio Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(55, 8, fmt.Sprintf("Properties: %d", summary.TotalProperties), "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, fmt.Sprintf("Occupied: %d / Vacant: %d", summary.OccupiedCount, summary.VacantCount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, fmt.Sprintf("Collected: %.2f", summary.TotalCollected), "1", 0, "C", false, 0, "")
	pdf.CellFormat(56, 8, fmt.Sprintf("Overdue: %.2f", summary.TotalOverdue), "1", 0, "C", false, 0, "")
	pdf.CellFormat(56, 8, fmt.Sprintf("Collection Rate: %.1f%%", summary.CollectionRate), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(55, 7, "Property", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Tenant", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Monthly Rent", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 7, "Rent Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount Due", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Lease Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Lease Ends", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		tenant := row.Property.TenantName
		rentStatus := "-"
		amountDue := "-"
		if tenant == "" {
			tenant = "(vacant)"
		}
		if row.PaymentStatus != nil {
			rentStatus = row.PaymentStatus.Status
			amountDue = fmt.Sprintf("%.2f", row.PaymentStatus.Amount)
		}
		leaseStatus := "-"
		leaseEnds := "-"
		if row.LeaseStatus != nil {
			leaseStatus = row.LeaseStatus.Status
		}
		if row.Property.EndDate != nil {
			leaseEnds = row.Property.EndDate.Format(timeutil.DisplayLayout)
		}

		pdf.CellFormat(55, 7, row.Property.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tenant, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", row.Property.MonthlyRent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 7, rentStatus, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, amountDue, "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, leaseStatus, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, leaseEnds, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render rent roll pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RentRollCSV renders the same rows as CSV for spreadsheet import.
func (s *ReportService) RentRollCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.Dashboard.Statuses(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"property", "address", "tenant", "monthly_rent", "rent_status", "amount_due", "lease_status", "lease_end_date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		rentStatus, amountDue := "", ""
		if row.PaymentStatus != nil {
			rentStatus = row.PaymentStatus.Status
			amountDue = strconv.FormatFloat(row.PaymentStatus.Amount, 'f', 2, 64)
		}
		leaseStatus, leaseEnd := "", ""
		if row.LeaseStatus != nil {
			leaseStatus = row.LeaseStatus.Status
		}
		if row.Property.EndDate != nil {
			leaseEnd = row.Property.EndDate.Format(timeutil.DateLayout)
		}

		record := []string{
			row.Property.Name,
			row.Property.Address,
			row.Property.TenantName,
			strconv.FormatFloat(row.Property.MonthlyRent, 'f', 2, 64),
			rentStatus,
			amountDue,
			leaseStatus,
			leaseEnd,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
