package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "leads.csv", want: FormatCSV},
		{name: "LEADS.XLSX", want: FormatXLSX},
		{name: "xlsx", want: FormatXLSX},
		{name: "csv", want: FormatCSV},
		{name: "leads.pdf", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_CSV(t *testing.T) {
	input := "Name,Email,Phone,City,Property Type,BHK,Budget Min,Budget Max,Purpose,Timeline,Source,Notes,Tags\n" +
		`"John Doe","john.doe@email.com","9876543210","Chandigarh","Apartment","2","4000000","5000000","Buy","0-3m","Website","Near IT Park","hot, nri"` + "\n" +
		",,,,,,,,,,,,\n" +
		`Jane Smith,,9876543211,Mohali,Plot,,,"9,000,000",Buy,3-6m,Referral,,` + "\n"

	rows, err := Decode(strings.NewReader(input), FormatCSV, 200)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, model.ImportRow{
		Row: 1,
		Request: model.BuyerRequest{
			FullName:     "John Doe",
			Email:        strPtr("john.doe@email.com"),
			Phone:        "9876543210",
			City:         "Chandigarh",
			PropertyType: "Apartment",
			BHK:          strPtr("2"),
			Purpose:      "Buy",
			BudgetMin:    intPtr(4000000),
			BudgetMax:    intPtr(5000000),
			Timeline:     "0-3m",
			Source:       "Website",
			Notes:        strPtr("Near IT Park"),
			Tags:         []string{"hot", "nri"},
		},
	}, rows[0])

	assert.Equal(t, 2, rows[1].Row)
	assert.Nil(t, rows[1].Request.Email)
	assert.Nil(t, rows[1].Request.BHK)
	assert.Nil(t, rows[1].Request.BudgetMin)
	assert.Equal(t, intPtr(9000000), rows[1].Request.BudgetMax)
	assert.Nil(t, rows[1].Request.Tags)
	assert.Empty(t, rows[1].Errors)
}

func TestDecode_CamelCaseHeadersAndBadBudget(t *testing.T) {
	input := "\ufefffullName,phone,city,propertyType,purpose,timeline,source,budgetMin\n" +
		"John Doe,9876543210,Chandigarh,Office,Buy,>6m,Call,lots\n"

	rows, err := Decode(strings.NewReader(input), FormatCSV, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "John Doe", rows[0].Request.FullName)
	assert.Equal(t, []string{"budgetMin must be a non-negative number."}, rows[0].Errors)
}

func TestDecode_Errors(t *testing.T) {
	header := strings.Join(Header, ",") + "\n"
	row := "John Doe,,9876543210,Chandigarh,Plot,,Buy,,,0-3m,Website,,,New\n"

	tests := []struct {
		name    string
		input   string
		maxRows int
		check   func(t *testing.T, err error)
	}{
		{
			name:  "empty file",
			input: "",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrEmpty) },
		},
		{
			name:  "header only",
			input: header,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrEmpty) },
		},
		{
			name:  "missing headers",
			input: "fullName,email\nJohn,\n",
			check: func(t *testing.T, err error) {
				var mh MissingHeadersError
				require.True(t, errors.As(err, &mh))
				assert.Equal(t, []string{"phone", "city", "propertyType", "purpose", "timeline", "source"}, mh.Headers)
				assert.Contains(t, err.Error(), "Missing required headers: phone, city")
			},
		},
		{
			name:    "too many rows",
			input:   header + strings.Repeat(row, 3),
			maxRows: 2,
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrTooManyRows) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatCSV, tt.maxRows)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDecode_KeepsEmptyTagPositions(t *testing.T) {
	input := strings.Join(Header, ",") + "\n" +
		`John Doe,,9876543210,Chandigarh,Plot,,Buy,,,0-3m,Website,,"a,,b",New` + "\n"

	rows, err := Decode(strings.NewReader(input), FormatCSV, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, rows[0].Request.Tags)
}

func exportBuyers() []model.Buyer {
	bhk := constant.BHK3
	return []model.Buyer{
		{
			ID: "b-1",
			BuyerFields: model.BuyerFields{
				FullName:     "John Doe",
				Email:        strPtr("john@example.com"),
				Phone:        "9876543210",
				City:         constant.CityChandigarh,
				PropertyType: constant.PropertyVilla,
				BHK:          &bhk,
				Purpose:      constant.PurposeBuy,
				BudgetMin:    intPtr(5000000),
				BudgetMax:    intPtr(8000000),
				Timeline:     constant.Timeline3To6Months,
				Source:       constant.SourceReferral,
				Notes:        strPtr("wants, a garden"),
				Tags:         model.Tags{"hot", "nri"},
				OwnerID:      "agent-1",
				Status:       constant.BuyerStatusQualified,
			},
		},
		{
			ID: "b-2",
			BuyerFields: model.BuyerFields{
				FullName:     "Jane Roe",
				Phone:        "9876543211",
				City:         constant.CityMohali,
				PropertyType: constant.PropertyPlot,
				Purpose:      constant.PurposeRent,
				Timeline:     constant.TimelineExploring,
				Source:       constant.SourceCall,
				OwnerID:      "agent-1",
				Status:       constant.BuyerStatusNew,
			},
		},
	}
}

func TestEncode_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatCSV, exportBuyers()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "fullName,email,phone,city,propertyType,bhk,purpose,budgetMin,budgetMax,timeline,source,notes,tags,status", lines[0])
	assert.Equal(t, `John Doe,john@example.com,9876543210,Chandigarh,Villa,3,Buy,5000000,8000000,3-6m,Referral,"wants, a garden","hot, nri",Qualified`, lines[1])
	assert.Equal(t, "Jane Roe,,9876543211,Mohali,Plot,,Rent,,,Exploring,Call,,,New", lines[2])
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatXLSX} {
		t.Run(fmt.Sprint(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, exportBuyers()))

			rows, err := Decode(bytes.NewReader(buf.Bytes()), format, 10)
			require.NoError(t, err)
			require.Len(t, rows, 2)

			first := rows[0].Request
			assert.Equal(t, "John Doe", first.FullName)
			assert.Equal(t, strPtr("3"), first.BHK)
			assert.Equal(t, intPtr(8000000), first.BudgetMax)
			assert.Equal(t, strPtr("wants, a garden"), first.Notes)
			assert.Equal(t, []string{"hot", "nri"}, first.Tags)

			second := rows[1].Request
			assert.Equal(t, "Plot", second.PropertyType)
			assert.Nil(t, second.BHK)
			assert.Nil(t, second.Tags)
		})
	}
}
