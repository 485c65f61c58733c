package prv

import (
	"strconv"
	"strings"
)

// SensorCount is the fixed number of sensor channels per transmitted
// message.
const SensorCount = 22

// Fallback tokens stamped when a message timestamp is absent or malformed.
const (
	fallbackDate = "0000-00-00"
	fallbackTime = "00:00:00"
)

// Record is one input row: the identity fields consumed by the header plus
// the fixed-size ordered sensor readings.
//
// String fields hold the raw tabular values; normalization (zero padding,
// trimming, defaults) happens at encoding time so a Record round-trips the
// source faithfully.
type Record struct {
	// Program is the primary entity identifier, zero-padded to 5 digits in
	// the header.
	Program string

	// PTT is the secondary identifier, zero-padded to 6 digits in the
	// header.
	PTT string

	// Satellite is the single-character satellite code.
	Satellite string

	// MessageDate is the raw message timestamp, "DD/MM/YYYY HH:MM[:SS]".
	MessageDate string

	// CompressionIndex is the raw compression index field; an empty value
	// encodes as "1".
	CompressionIndex string

	// Sensors holds the numeric readings for channels 1..22 in order.
	// Missing or unparseable source fields are already 0 here.
	Sensors [SensorCount]float64
}

// headerLine renders the fixed-pattern header for this record with the given
// 1-based message index: 5-digit program, 6-digit PTT, double space, 3-digit
// index, 2-wide sensor count, satellite code.
func (r *Record) headerLine(index int) string {
	var sb strings.Builder
	sb.WriteString(zfill(r.Program, 5))
	sb.WriteByte(' ')
	sb.WriteString(zfill(r.PTT, 6))
	sb.WriteString("  ")
	sb.WriteString(zfill(strconv.Itoa(index), 3))
	sb.WriteByte(' ')
	sb.WriteString(rjust(strconv.Itoa(SensorCount), 2))
	sb.WriteByte(' ')
	sb.WriteString(ljust(strings.TrimSpace(r.Satellite), 1))

	return sb.String()
}

// normalizeTimestamp splits a raw "DD/MM/YYYY HH:MM[:SS]" timestamp into the
// "YYYY-MM-DD" date token and the "HH:MM:SS" time token stamped onto the
// first continuation line.
//
// A two-component time gets seconds forced to "00"; any other component
// count is zero-padded and re-joined as-is. Every parse failure degrades to
// the "0000-00-00" / "00:00:00" literals; no error is ever surfaced.
func normalizeTimestamp(raw string) (date, clock string) {
	date, clock = fallbackDate, fallbackTime

	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return date, clock
	}

	dmy := strings.Split(parts[0], "/")
	if len(dmy) != 3 {
		return date, clock
	}
	date = zfill(dmy[2], 4) + "-" + zfill(dmy[1], 2) + "-" + zfill(dmy[0], 2)

	hms := strings.Split(parts[1], ":")
	if len(hms) == 2 {
		clock = zfill(hms[0], 2) + ":" + zfill(hms[1], 2) + ":00"
	} else {
		padded := make([]string, len(hms))
		for i, p := range hms {
			padded[i] = zfill(p, 2)
		}
		clock = strings.Join(padded, ":")
	}

	return date, clock
}

// zfill left-pads s with zeros to width, inserting them after a leading
// sign. Strings already at least width long are returned unchanged.
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}

	pad := strings.Repeat("0", width-len(s))
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}

	return pad + s
}

// rjust right-justifies s in a field of width spaces, never truncating.
func rjust(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

// ljust left-justifies s in a field of width spaces, never truncating.
func ljust(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
