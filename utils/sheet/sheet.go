// Package sheet reads and writes buyer spreadsheets in CSV and XLSX form.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muhammadheryan/buyer-leads/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")
	ErrEmpty             = errors.New("file is empty")
	ErrTooManyRows       = errors.New("too many rows")
)

// MissingHeadersError lists the required columns a file did not carry.
type MissingHeadersError struct {
	Headers []string
}

func (e MissingHeadersError) Error() string {
	return "Missing required headers: " + strings.Join(e.Headers, ", ")
}

// Header is the export column order. Import accepts these names or the
// labels in headerAliases, in any order and case.
var Header = []string{
	"fullName", "email", "phone", "city", "propertyType", "bhk", "purpose",
	"budgetMin", "budgetMax", "timeline", "source", "notes", "tags", "status",
}

var requiredHeaders = []string{"fullName", "phone", "city", "propertyType", "purpose", "timeline", "source"}

var headerAliases = map[string]string{
	"name":          "fullName",
	"full name":     "fullName",
	"email address": "email",
	"phone number":  "phone",
	"mobile":        "phone",
	"property type": "propertyType",
	"budget min":    "budgetMin",
	"min budget":    "budgetMin",
	"budget max":    "budgetMax",
	"max budget":    "budgetMax",
}

// ParseFormat resolves a format from an explicit name such as "xlsx" or a
// file name such as "leads.csv".
func ParseFormat(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = strings.ToLower(strings.TrimSpace(name))
	}
	switch Format(ext) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", ErrUnsupportedFormat
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Decode reads the header row and at most maxRows data rows. Blank rows are
// skipped; Row numbers count data rows from 1.
func Decode(r io.Reader, format Format, maxRows int) ([]model.ImportRow, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return decodeRecords(records, maxRows)
}

// Encode writes the header row followed by one row per buyer.
func Encode(w io.Writer, format Format, buyers []model.Buyer) error {
	rows := make([][]string, 0, len(buyers))
	for i := range buyers {
		rows = append(rows, encodeBuyer(&buyers[i]))
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatXLSX:
		return writeXLSX(w, rows)
	}
	return ErrUnsupportedFormat
}

func decodeRecords(records [][]string, maxRows int) ([]model.ImportRow, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	columns := detectColumns(records[0])

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := columns[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, MissingHeadersError{Headers: missing}
	}

	var rows []model.ImportRow
	for _, record := range records[1:] {
		if blank(record) {
			continue
		}
		if maxRows > 0 && len(rows) == maxRows {
			return nil, fmt.Errorf("%w: maximum %d rows allowed", ErrTooManyRows, maxRows)
		}
		rows = append(rows, decodeRow(len(rows)+1, record, columns))
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

// detectColumns maps canonical field names to their column index. The first
// matching column wins.
func detectColumns(headers []string) map[string]int {
	canonical := make(map[string]string, len(Header))
	for _, h := range Header {
		canonical[strings.ToLower(h)] = h
	}

	columns := make(map[string]int)
	for i, raw := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		key = strings.Join(strings.Fields(strings.ReplaceAll(key, "_", " ")), " ")
		name, ok := headerAliases[key]
		if !ok {
			name, ok = canonical[strings.ReplaceAll(key, " ", "")]
		}
		if !ok {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func decodeRow(n int, record []string, columns map[string]int) model.ImportRow {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	optional := func(name string) *string {
		v := cell(name)
		if v == "" {
			return nil
		}
		return &v
	}

	row := model.ImportRow{Row: n}
	row.Request = model.BuyerRequest{
		FullName:     cell("fullName"),
		Email:        optional("email"),
		Phone:        cell("phone"),
		City:         cell("city"),
		PropertyType: cell("propertyType"),
		BHK:          optional("bhk"),
		Purpose:      cell("purpose"),
		Timeline:     cell("timeline"),
		Source:       cell("source"),
		Notes:        optional("notes"),
		Tags:         splitTags(cell("tags")),
	}

	for _, f := range []struct {
		name string
		dst  **int64
	}{
		{"budgetMin", &row.Request.BudgetMin},
		{"budgetMax", &row.Request.BudgetMax},
	} {
		v := strings.ReplaceAll(cell(f.name), ",", "")
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			row.Errors = append(row.Errors, f.name+" must be a non-negative number.")
			continue
		}
		*f.dst = &parsed
	}
	return row
}

// splitTags keeps empty entries so the validator can report their position.
// A cell that is entirely blank means no tags.
func splitTags(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func encodeBuyer(b *model.Buyer) []string {
	opt := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	num := func(p *int64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatInt(*p, 10)
	}
	bhk := ""
	if b.BHK != nil {
		bhk = string(*b.BHK)
	}
	return []string{
		b.FullName,
		opt(b.Email),
		b.Phone,
		string(b.City),
		string(b.PropertyType),
		bhk,
		string(b.Purpose),
		num(b.BudgetMin),
		num(b.BudgetMax),
		string(b.Timeline),
		string(b.Source),
		opt(b.Notes),
		strings.Join(b.Tags, ", "),
		string(b.Status),
	}
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
