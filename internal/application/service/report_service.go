package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ReportService renders financial reports as xlsx workbooks.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// FinancialReport builds an xlsx workbook with the payments and expenses
// of the period on separate sheets, each closed by a total row.
func (s *ReportService) FinancialReport(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	if end.Before(start) {
		return nil, "", apperror.NewBadRequestError("Report end date is before start date")
	}

	payments, err := s.analyticsRepo.PaymentsBetween(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	expenses, err := s.analyticsRepo.ExpensesBetween(ctx, start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close report workbook")
		}
	}()

	incomeSheet := "Pemasukan"
	f.SetSheetName("Sheet1", incomeSheet)
	headers := []string{"Tanggal", "Nota", "Metode", "Jumlah"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(incomeSheet, cell, h)
	}

	var incomeTotal float64
	for i, p := range payments {
		row := i + 2
		f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", row), p.PaidAt.Format("2006-01-02 15:04"))
		f.SetCellValue(incomeSheet, fmt.Sprintf("B%d", row), p.Order.NotaNo)
		f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", row), p.Method)
		f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", row), p.Amount)
		incomeTotal += p.Amount
	}
	totalRow := len(payments) + 2
	f.SetCellValue(incomeSheet, fmt.Sprintf("C%d", totalRow), "Total")
	f.SetCellValue(incomeSheet, fmt.Sprintf("D%d", totalRow), incomeTotal)

	expenseSheet := "Pengeluaran"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		return nil, "", err
	}
	expenseHeaders := []string{"Tanggal", "Keterangan", "Kategori", "Jumlah"}
	for i, h := range expenseHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(expenseSheet, cell, h)
	}

	var expenseTotal float64
	for i, e := range expenses {
		row := i + 2
		category := ""
		if e.Category != nil {
			category = *e.Category
		}
		f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", row), e.SpentAt.Format("2006-01-02 15:04"))
		f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", row), e.Description)
		f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", row), category)
		f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", row), e.Amount)
		expenseTotal += e.Amount
	}
	expenseTotalRow := len(expenses) + 2
	f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", expenseTotalRow), "Total")
	f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", expenseTotalRow), expenseTotal)

	summarySheet := "Ringkasan"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", err
	}
	f.SetCellValue(summarySheet, "A1", "Periode")
	f.SetCellValue(summarySheet, "B1", start.Format("2006-01-02")+" s/d "+end.Format("2006-01-02"))
	f.SetCellValue(summarySheet, "A2", "Total Pemasukan")
	f.SetCellValue(summarySheet, "B2", incomeTotal)
	f.SetCellValue(summarySheet, "A3", "Total Pengeluaran")
	f.SetCellValue(summarySheet, "B3", expenseTotal)
	f.SetCellValue(summarySheet, "A4", "Selisih")
	f.SetCellValue(summarySheet, "B4", incomeTotal-expenseTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("laporan-keuangan-%s-%s.xlsx",
		start.Format("20060102"), end.Format("20060102"))
	return buf.Bytes(), filename, nil
}
