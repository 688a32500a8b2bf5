package gsf

import (
    "bytes"
    "encoding/binary"
    "strconv"
    "strings"
    "time"

    "github.com/soniakeys/meeus/v3/julian"
)

// a mix of strings that imply a boolean condition
var param_bools = map[string]bool{
    "yes":   true,
    "no":    false,
    "true":  true,
    "false": false,
}

// standardise the misspelling still present in some older GSF files
var param_unknowns = map[string]string{
    "unknwn":  "unknown",
    "unknown": "unknown",
}

// parse_reftime parses the GSF "REFERENCE TIME" parameter, whose format is
// "yyyy/ddd hh:mm:ss" (e.g. "1970/001 00:00:00").
func parse_reftime(date_str string) time.Time {
    split := strings.Split(date_str, " ")
    split2 := strings.Split(split[0], "/")

    year, _ := strconv.Atoi(split2[0])
    doy, _ := strconv.Atoi(split2[1])
    month, day := julian.DayOfYearToCalendar(doy, julian.LeapYearGregorian(year))

    split3 := strings.Split(split[1], ":")
    hms := make([]int, len(split3))
    for i, val := range split3 {
        hms[i], _ = strconv.Atoi(val)
    }

    return time.Date(year, time.Month(month), day, hms[0], hms[1], hms[2], 0, time.UTC)
}

// decode_params is shared by DecodeProcessingParameters and
// DecodeSensorParameters; both records share an identical wire layout of a
// timestamp followed by a count of two-byte length prefixed "key=value"
// strings. Values are coerced to the most specific Go type the string will
// parse as, since the record may carry pretty much anything.
func decode_params(buffer []byte, time_key string) map[string]interface{} {
    var base struct {
        Seconds      int32
        Nano_seconds int32
        N_params     int16
    }

    reader := bytes.NewReader(buffer)
    _ = binary.Read(reader, binary.BigEndian, &base)

    params := make(map[string]interface{})

    pos := 10
    var i int16
    for i = 0; i < base.N_params; i++ {
        if pos+2 > len(buffer) {
            break
        }
        param_size := int(binary.BigEndian.Uint16(buffer[pos : pos+2]))
        pos += 2
        if pos+param_size > len(buffer) {
            break
        }
        param := string(buffer[pos : pos+param_size])
        pos += param_size

        split := strings.SplitN(strings.TrimSpace(param), "=", 2)
        if len(split) != 2 {
            continue
        }
        key := strings.ReplaceAll(strings.ToLower(split[0]), " ", "_")
        val := strings.Trim(strings.ToLower(split[1]), "\x00")

        switch {
        case strings.Contains(val, ","):
            svals := strings.Split(val, ",")
            if strings.Contains(val, ".") {
                fvals := make([]float32, len(svals))
                for j, s := range svals {
                    fval, err := strconv.ParseFloat(s, 32)
                    if err == nil {
                        fvals[j] = float32(fval)
                    }
                }
                params[key] = fvals
            } else {
                params[key] = svals
            }
        case strings.Contains(val, "."):
            if fval, err := strconv.ParseFloat(val, 32); err == nil {
                params[key] = float32(fval)
            } else {
                params[key] = val
            }
        default:
            if _, exists := param_bools[val]; exists {
                params[key] = param_bools[val]
            } else if _, exists := param_unknowns[val]; exists {
                params[key] = param_unknowns[val]
            } else if key == "reference_time" {
                params[key] = parse_reftime(val)
            } else if ival, err := strconv.Atoi(val); err == nil {
                params[key] = ival
            } else {
                params[key] = val
            }
        }
    }

    params[time_key] = time.Unix(int64(base.Seconds), int64(base.Nano_seconds)).UTC()

    return params
}

// DecodeProcessingParameters decodes a PROCESSING_PARAMETERS record. It
// contains scalar or vector values describing the overall survey
// conditions or operational values, such as the navigation antenna
// location or the reference ellipsoid used for geographic positions.
func DecodeProcessingParameters(buffer []byte) map[string]interface{} {
    return decode_params(buffer, "processed_time")
}

// DecodeSensorParameters decodes a SENSOR_PARAMETERS record, carrying
// operating parameters specific to the sensor that produced the pings
// (e.g. pulse length, transmit power, mode), in the same "key=value" wire
// format as PROCESSING_PARAMETERS.
func DecodeSensorParameters(buffer []byte) map[string]interface{} {
    return decode_params(buffer, "applied_time")
}

// SensorParamRecords decodes all SENSOR_PARAMETERS records.
func (g *GsfFile) SensorParamRecords(fi *FileInfo) (params []map[string]interface{}) {
    params = make([]map[string]interface{}, 0, fi.Record_Counts["SENSOR_PARAMETERS"])

    original_pos, _ := Tell(g.Stream)

    for _, rec := range fi.Record_Index["SENSOR_PARAMETERS"] {
        buffer := g.RecBuf(rec)
        params = append(params, DecodeSensorParameters(buffer))
    }

    _, _ = g.Stream.Seek(original_pos, 0)

    return params
}
