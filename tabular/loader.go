// Package tabular loads heterogeneous reconciliation files (CSV, text,
// Excel, ODS, JSON) into a uniform table of string cells.
package tabular

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Table is a parsed file: a header row plus data rows keyed by the raw
// (untrimmed-content, trimmed-name) column names.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// Delimiters tried in order for .csv/.txt files; the first one present
// anywhere in the decoded text wins.
var delimiterPriority = []rune{',', ';', '\t', '|', ' ', '.', '_'}

// Load parses raw file bytes into a Table. Only the extension of fileName is
// consulted; malformed UTF-8 in text files is dropped rather than fatal.
func Load(data []byte, fileName string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch ext {
	case ".csv", ".txt":
		text := strings.ToValidUTF8(string(data), "")
		return parseDelimited(text, detectDelimiter(text))
	case ".xlsx", ".xls":
		return loadSpreadsheet(data)
	case ".ods":
		text, err := odsToCSV(data)
		if err != nil {
			return nil, err
		}
		return parseDelimited(text, ',')
	case ".json":
		text, err := jsonToCSV(data)
		if err != nil {
			return nil, err
		}
		return parseDelimited(text, ',')
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

func detectDelimiter(text string) rune {
	for _, delim := range delimiterPriority {
		if strings.ContainsRune(text, delim) {
			return delim
		}
	}
	return ','
}

func parseDelimited(text string, delimiter rune) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %v", err)
		}

		row := make(map[string]string, len(header))
		for i, value := range record {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: header, Rows: rows}, nil
}

// loadSpreadsheet reads the first sheet of an Excel workbook, every cell as
// text.
func loadSpreadsheet(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("no sheets found in spreadsheet")
	}

	sheetRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %v", err)
	}
	if len(sheetRows) == 0 {
		return nil, errors.New("spreadsheet has no header row")
	}

	header := sheetRows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for _, sheetRow := range sheetRows[1:] {
		row := make(map[string]string, len(header))
		for i, value := range sheetRow {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: header, Rows: rows}, nil
}

// jsonToCSV flattens a JSON document (object or array of objects) into CSV
// text. Nested objects become dotted columns; arrays are kept as JSON text.
func jsonToCSV(data []byte) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse JSON file: %v", err)
	}

	var objects []map[string]interface{}
	switch v := doc.(type) {
	case []interface{}:
		for _, item := range v {
			obj, ok := item.(map[string]interface{})
			if !ok {
				return "", errors.New("JSON array must contain objects")
			}
			objects = append(objects, obj)
		}
	case map[string]interface{}:
		objects = append(objects, v)
	default:
		return "", errors.New("JSON file must be an object or an array of objects")
	}

	flatRows := make([]map[string]string, 0, len(objects))
	var columns []string
	seen := make(map[string]bool)
	for _, obj := range objects {
		flat := make(map[string]string)
		flattenJSON("", obj, flat)
		for _, key := range sortedKeys(flat) {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
		flatRows = append(flatRows, flat)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return "", err
	}
	for _, flat := range flatRows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = flat[col]
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

func flattenJSON(prefix string, value interface{}, out map[string]string) {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			childKey := key
			if prefix != "" {
				childKey = prefix + "." + key
			}
			flattenJSON(childKey, child, out)
		}
	case []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			out[prefix] = ""
			return
		}
		out[prefix] = string(encoded)
	case string:
		out[prefix] = v
	case float64:
		out[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		out[prefix] = strconv.FormatBool(v)
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
