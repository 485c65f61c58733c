package prv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderLine(t *testing.T) {
	rec := Record{Program: "123", PTT: "45", Satellite: "A"}
	require.Equal(t, "00123 000045  001 22 A", rec.headerLine(1))
	require.Equal(t, "00123 000045  042 22 A", rec.headerLine(42))
	require.Equal(t, "00123 000045  123 22 A", rec.headerLine(123))
}

func TestHeaderLine_WideIdentifiersKept(t *testing.T) {
	rec := Record{Program: "1234567", PTT: "12345678", Satellite: "K"}
	require.Equal(t, "1234567 12345678  001 22 K", rec.headerLine(1))
}

func TestHeaderLine_SatelliteTrimmedAndPadded(t *testing.T) {
	rec := Record{Program: "1", PTT: "2", Satellite: " A "}
	require.Equal(t, "00001 000002  001 22 A", rec.headerLine(1))

	rec.Satellite = ""
	require.Equal(t, "00001 000002  001 22  ", rec.headerLine(1))
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantDate  string
		wantClock string
	}{
		{name: "minute precision", raw: "01/02/2020 13:05", wantDate: "2020-02-01", wantClock: "13:05:00"},
		{name: "second precision", raw: "01/02/2020 13:05:30", wantDate: "2020-02-01", wantClock: "13:05:30"},
		{name: "single digit components", raw: "1/2/2020 3:5", wantDate: "2020-02-01", wantClock: "03:05:00"},
		{name: "empty", raw: "", wantDate: "0000-00-00", wantClock: "00:00:00"},
		{name: "no time part", raw: "01/02/2020", wantDate: "0000-00-00", wantClock: "00:00:00"},
		{name: "wrong date separator", raw: "01-02-2020 13:05", wantDate: "0000-00-00", wantClock: "00:00:00"},
		{name: "garbage", raw: "not a timestamp here", wantDate: "0000-00-00", wantClock: "00:00:00"},
		{name: "colonless time passes through", raw: "01/02/2020 130530", wantDate: "2020-02-01", wantClock: "130530"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock := normalizeTimestamp(tt.raw)
			require.Equal(t, tt.wantDate, date)
			require.Equal(t, tt.wantClock, clock)
		})
	}
}

func TestZfill(t *testing.T) {
	require.Equal(t, "005", zfill("5", 3))
	require.Equal(t, "-05", zfill("-5", 3))
	require.Equal(t, "+001", zfill("+1", 4))
	require.Equal(t, "12345", zfill("12345", 3))
	require.Equal(t, "00", zfill("", 2))
}

func TestJustifyHelpers(t *testing.T) {
	require.Equal(t, " 22", rjust("22", 3))
	require.Equal(t, "22", rjust("22", 2))
	require.Equal(t, "22", rjust("22", 1))
	require.Equal(t, "A  ", ljust("A", 3))
	require.Equal(t, "ABC", ljust("ABC", 2))
}
