package gsf

import (
    "bytes"
    "encoding/binary"
    "strings"
    "time"
)

// History captures who/what processed the data and when, as recorded by the
// application that wrote the HISTORY record.
type History struct {
    Timestamp     time.Time
    Host_Name     string
    Operator_Name string
    Command_Line  string
    Comment       string
}

// DecodeHistory is a constructor for History by decoding a HISTORY record.
// Fields are a sequence of two-byte length prefixed strings following the
// seconds/nanoseconds timestamp; host name, operator name, command line and
// comment, in that order.
func DecodeHistory(buffer []byte) History {
    var base struct {
        Seconds      int32
        Nano_seconds int32
    }

    reader := bytes.NewReader(buffer)
    _ = binary.Read(reader, binary.BigEndian, &base)

    pos := 8
    readField := func() string {
        length := int(binary.BigEndian.Uint16(buffer[pos : pos+2]))
        pos += 2
        value := string(buffer[pos : pos+length])
        pos += length
        return strings.Trim(value, "\x00")
    }

    host := readField()
    operator := readField()
    cmd := readField()
    comment := readField()

    return History{
        Timestamp:     time.Unix(int64(base.Seconds), int64(base.Nano_seconds)).UTC(),
        Host_Name:     host,
        Operator_Name: operator,
        Command_Line:  cmd,
        Comment:       comment,
    }
}

// HistoryRecords decodes all HISTORY records.
func (g *GsfFile) HistoryRecords(fi *FileInfo) (histories []History) {
    histories = make([]History, 0, fi.Record_Counts["HISTORY"])

    original_pos, _ := Tell(g.Stream)

    for _, rec := range fi.Record_Index["HISTORY"] {
        buffer := g.RecBuf(rec)
        histories = append(histories, DecodeHistory(buffer))
    }

    _, _ = g.Stream.Seek(original_pos, 0)

    return histories
}

// NavigationError captures the horizontal position error estimate associated
// with a navigation fix; superseded by HVNavigationError but still present in
// older GSF files.
type NavigationError struct {
    Timestamp         time.Time
    Record_Id         int32
    Longitude_Error   float64
    Latitude_Error    float64
}

// DecodeNavigationError is a constructor for NavigationError by decoding a
// NAVIGATION_ERROR record. The error estimates are stored as tenths of a
// metre.
func DecodeNavigationError(buffer []byte) NavigationError {
    var base struct {
        Seconds         int32
        Nano_seconds    int32
        Record_Id       int32
        Longitude_Error int32
        Latitude_Error  int32
    }

    reader := bytes.NewReader(buffer)
    _ = binary.Read(reader, binary.BigEndian, &base)

    return NavigationError{
        Timestamp:       time.Unix(int64(base.Seconds), int64(base.Nano_seconds)).UTC(),
        Record_Id:       base.Record_Id,
        Longitude_Error: float64(base.Longitude_Error) / 10.0,
        Latitude_Error:  float64(base.Latitude_Error) / 10.0,
    }
}

// NavigationErrorRecords decodes all NAVIGATION_ERROR records.
func (g *GsfFile) NavigationErrorRecords(fi *FileInfo) (nav_errors []NavigationError) {
    nav_errors = make([]NavigationError, 0, fi.Record_Counts["NAVIGATION_ERROR"])

    original_pos, _ := Tell(g.Stream)

    for _, rec := range fi.Record_Index["NAVIGATION_ERROR"] {
        buffer := g.RecBuf(rec)
        nav_errors = append(nav_errors, DecodeNavigationError(buffer))
    }

    _, _ = g.Stream.Seek(original_pos, 0)

    return nav_errors
}

// HVNavigationError replaces NavigationError with separate horizontal and
// vertical error estimates, an estimated positioning uncertainty (SEP), and
// the name of the positioning system in use.
type HVNavigationError struct {
    Timestamp        time.Time
    Record_Id        int32
    Horizontal_Error float64
    Vertical_Error   float64
    SEP_Uncertainty  float64
    Position_Type    string
}

// DecodeHVNavigationError is a constructor for HVNavigationError by decoding
// an HV_NAVIGATION_ERROR record. Horizontal and vertical errors are stored
// in thousandths of a metre, SEP uncertainty in hundredths.
func DecodeHVNavigationError(buffer []byte) HVNavigationError {
    var base struct {
        Seconds          int32
        Nano_seconds     int32
        Record_Id        int32
        Horizontal_Error int32
        Vertical_Error   int32
        SEP_Uncertainty  uint16
    }

    reader := bytes.NewReader(buffer)
    _ = binary.Read(reader, binary.BigEndian, &base)

    // two spare bytes, then a two-byte length prefixed positioning type string
    pos := 24
    var position_type string
    if len(buffer) >= pos+2 {
        length := int(binary.BigEndian.Uint16(buffer[pos : pos+2]))
        pos += 2
        if len(buffer) >= pos+length {
            position_type = strings.Trim(string(buffer[pos:pos+length]), "\x00")
        }
    }

    return HVNavigationError{
        Timestamp:        time.Unix(int64(base.Seconds), int64(base.Nano_seconds)).UTC(),
        Record_Id:        base.Record_Id,
        Horizontal_Error: float64(base.Horizontal_Error) / 1000.0,
        Vertical_Error:   float64(base.Vertical_Error) / 1000.0,
        SEP_Uncertainty:  float64(base.SEP_Uncertainty) / 100.0,
        Position_Type:    position_type,
    }
}

// HVNavigationErrorRecords decodes all HV_NAVIGATION_ERROR records.
func (g *GsfFile) HVNavigationErrorRecords(fi *FileInfo) (hv_nav_errors []HVNavigationError) {
    hv_nav_errors = make([]HVNavigationError, 0, fi.Record_Counts["HV_NAVIGATION_ERROR"])

    original_pos, _ := Tell(g.Stream)

    for _, rec := range fi.Record_Index["HV_NAVIGATION_ERROR"] {
        buffer := g.RecBuf(rec)
        hv_nav_errors = append(hv_nav_errors, DecodeHVNavigationError(buffer))
    }

    _, _ = g.Stream.Seek(original_pos, 0)

    return hv_nav_errors
}
