package prv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/prvkit/compress"
	"github.com/arloliu/prvkit/encoding"
	"github.com/arloliu/prvkit/errs"
	"github.com/arloliu/prvkit/format"
	"github.com/arloliu/prvkit/layout"
)

// Column names consumed from the tabular input. Sensor channels are named
// "1".."22".
const (
	colProgram     = "Program"
	colPTT         = "PTT"
	colSatellite   = "Satellite"
	colMessageDate = "Message date"
	colCompression = "Compression index"
)

// Convert streams CSV rows from r and writes the resulting PRV records to w.
//
// The first CSV row is the header; rows are encoded strictly in input order.
// Returns the number of records written. File-level failures (unreadable
// CSV, writer errors) abort the conversion; value-level failures degrade per
// record and are never surfaced.
func Convert(r io.Reader, w io.Writer, schema layout.Schema) (int, error) {
	enc, err := NewEncoder(w, schema)
	if err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}

		return 0, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return enc.Records(), fmt.Errorf("read csv row: %w", err)
		}

		if err := enc.WriteRecord(recordFromRow(columns, row)); err != nil {
			return enc.Records(), err
		}
	}

	return enc.Records(), nil
}

// recordFromRow maps one raw CSV row onto a Record using the header's
// column-name index. Absent columns read as empty strings; sensor fields go
// through the total numeric parser, so blanks and garbage become 0.
func recordFromRow(columns map[string]int, row []string) Record {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return row[idx]
	}

	rec := Record{
		Program:          field(colProgram),
		PTT:              field(colPTT),
		Satellite:        field(colSatellite),
		MessageDate:      field(colMessageDate),
		CompressionIndex: field(colCompression),
	}

	for i := 0; i < SensorCount; i++ {
		rec.Sensors[i] = encoding.ParseNumeric(field(fmt.Sprintf("%d", i+1)))
	}

	return rec
}

// ConvertFile converts the CSV at csvPath into a PRV file at outPath.
//
// With format.CompressionNone the output is written through a buffered
// writer, line at a time. Any other algorithm buffers the PRV text in memory
// and writes the compressed archive in one piece.
//
// Returns the number of records written and the compression stats of the
// written file (original and written sizes are equal for
// format.CompressionNone).
//
// Errors:
//   - errs.ErrCSVNotFound if csvPath does not exist
//   - schema validation and I/O errors otherwise
func ConvertFile(csvPath, outPath string, schema layout.Schema, compression format.CompressionType) (int, compress.Stats, error) {
	stats := compress.Stats{Algorithm: compression}

	in, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, stats, fmt.Errorf("%w: %s", errs.ErrCSVNotFound, csvPath)
		}

		return 0, stats, fmt.Errorf("open csv %s: %w", csvPath, err)
	}
	defer in.Close()

	if compression == format.CompressionNone {
		out, err := os.Create(outPath)
		if err != nil {
			return 0, stats, fmt.Errorf("create output %s: %w", outPath, err)
		}

		bw := bufio.NewWriter(out)
		cw := &countingWriter{w: bw}
		count, convErr := Convert(in, cw, schema)
		if flushErr := bw.Flush(); convErr == nil {
			convErr = flushErr
		}
		if closeErr := out.Close(); convErr == nil {
			convErr = closeErr
		}

		stats.OriginalSize = cw.n
		stats.CompressedSize = cw.n

		return count, stats, convErr
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return 0, stats, err
	}

	var buf bytes.Buffer
	count, err := Convert(in, &buf, schema)
	if err != nil {
		return count, stats, err
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return count, stats, fmt.Errorf("compress output: %w", err)
	}
	if err := os.WriteFile(outPath, compressed, 0o644); err != nil {
		return count, stats, fmt.Errorf("write output %s: %w", outPath, err)
	}

	stats.OriginalSize = int64(buf.Len())
	stats.CompressedSize = int64(len(compressed))

	return count, stats, nil
}

// countingWriter tracks the number of bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
