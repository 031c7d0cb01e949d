package tabular

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// An .ods file is a zip archive; cell data lives in content.xml. There is no
// dedicated ODS reader in our stack, so the sheet is pulled out of the XML
// directly and re-emitted as CSV text.

type odsContent struct {
	Body struct {
		Spreadsheet struct {
			Tables []odsTable `xml:"table"`
		} `xml:"spreadsheet"`
	} `xml:"body"`
}

type odsTable struct {
	Rows []odsRow `xml:"table-row"`
}

type odsRow struct {
	Cells []odsCell `xml:"table-cell"`
}

type odsCell struct {
	Repeated   int      `xml:"number-columns-repeated,attr"`
	Paragraphs []string `xml:"p"`
}

// odsToCSV converts the first sheet of an ODS document to comma-delimited
// text. The first sheet row is treated as the header.
func odsToCSV(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open ODS file: %v", err)
	}

	var contentXML []byte
	for _, file := range zr.File {
		if file.Name != "content.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open ODS content: %v", err)
		}
		contentXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read ODS content: %v", err)
		}
		break
	}
	if contentXML == nil {
		return "", errors.New("ODS file has no content.xml")
	}

	var content odsContent
	if err := xml.Unmarshal(contentXML, &content); err != nil {
		return "", fmt.Errorf("failed to parse ODS content: %v", err)
	}
	if len(content.Body.Spreadsheet.Tables) == 0 {
		return "", errors.New("ODS file has no sheets")
	}

	sheet := content.Body.Spreadsheet.Tables[0]

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range sheet.Rows {
		record := expandRow(row)
		if len(record) == 0 {
			continue
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// expandRow resolves column repetition and trims the trailing run of empty
// cells that ODS writers pad rows with.
func expandRow(row odsRow) []string {
	var cells []string
	for _, cell := range row.Cells {
		value := strings.Join(cell.Paragraphs, "\n")
		repeat := cell.Repeated
		if repeat < 1 {
			repeat = 1
		}
		// A repeated empty cell at the end of a row is padding, often
		// thousands of columns wide. Collapse it to a single cell and let
		// the trailing trim below drop it.
		if value == "" && repeat > 1 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			cells = append(cells, value)
		}
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
