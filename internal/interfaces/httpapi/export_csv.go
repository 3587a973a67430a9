package httpapi

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/valyala/bytebufferpool"
)

// writeCSV renders the whole table into a pooled buffer before touching the
// response, so an encoding failure can still be reported as an error.
func writeCSV(ctx context.Context, w http.ResponseWriter, filename string, table dataset.Table) error {
	ctx, span := startSpan(ctx, "httpapi.export.CSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := encodeCSV(buf, table); err != nil {
		writeError(ctx, w, err)
		return err
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.B)
	return err
}

func encodeCSV(buf *bytebufferpool.ByteBuffer, table dataset.Table) error {
	cw := csv.NewWriter(buf)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			var v any
			if i < len(row) {
				v = row[i]
			}
			record[i] = dataset.FormatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvFilename(athlete string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(athlete) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "athlete"
	}
	return name + "-results.csv"
}
