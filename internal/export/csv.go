// Package export renders attendance records for download.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

// FileName is the attachment name used by the export command.
const FileName = "attendance.csv"

var header = []string{"member_id", "date", "woke_up", "notified"}

// WriteCSV writes one row per record after a header row.
func WriteCSV(w io.Writer, records []*entity.Attendance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.MemberID,
			r.Day,
			strconv.FormatBool(r.WokeUp),
			strconv.FormatBool(r.Notified),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV returns the export as a byte slice.
func CSV(records []*entity.Attendance) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
