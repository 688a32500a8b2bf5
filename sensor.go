package gsf

import (
	"reflect"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// SensorMetadata carries the decoded sensor-specific subrecord for a
// chunk of pings. Exactly one field is populated per chunk, selected by
// the chunk's sensor id (§4.D); the rest stay at their zero value. Adding
// a new dialect only requires a field here plus a case in
// newSensorMetadata, sensorSpecificFieldName, sensorSpecificAttrs and the
// ping.go decode switch - the append/write paths are generic over
// whichever field is active.
type SensorMetadata struct {
	Seabeam     Seabeam
	Em12        Em12
	Em100       Em100
	Em950       Em950
	Em121A      Em121A
	Em121       Em121
	SeaBat      SeaBat
	SeaBatII    SeaBatII
	SeaBat8101  SeaBat8101
	Em1000      Em1000
	ElacMkII    ElacMkII
	CmpSass     CmpSass
	Em3         Em3
	Reson8100   Reson8100
	EM_4        EM4
}

// sensorSpecificFieldName maps a sensor id to the SensorMetadata field
// that carries it. An empty string means the dialect has no wired
// struct yet; per §4.D that is a legitimate non-fatal skip, not an error.
func sensorSpecificFieldName(sensor_id SubRecordID) string {
	switch sensor_id {
	case SEABEAM:
		return "Seabeam"
	case EM12:
		return "Em12"
	case EM100:
		return "Em100"
	case EM950:
		return "Em950"
	case EM121A:
		return "Em121A"
	case EM121:
		return "Em121"
	case SEABAT:
		return "SeaBat"
	case SEABAT_II:
		return "SeaBatII"
	case SEABAT_8101:
		return "SeaBat8101"
	case EM1000:
		return "Em1000"
	case ELAC_MKII:
		return "ElacMkII"
	case CMP_SAAS:
		return "CmpSass"
	case EM120, EM300, EM1002, EM2000, EM3000, EM3002, EM3000D, EM3002D, EM121A_SIS:
		return "Em3"
	case RESON_8101, RESON_8111, RESON_8124, RESON_8125, RESON_8150, RESON_8160:
		return "Reson8100"
	case EM710, EM302, EM122, EM2040:
		return "EM_4"
	}
	return ""
}

// newSensorMetadata is a helper func for initialising SensorMetadata where
// the specific sensor will contain slices initialised to the number of pings
// required.
// This func is only utilised when processing groups of pings to form a single
// cohesive block of data.
func newSensorMetadata(number_pings int, sensor_id SubRecordID) (sen_md SensorMetadata) {
	sen_md = SensorMetadata{}

	name := sensorSpecificFieldName(sensor_id)
	if name == "" {
		return sen_md
	}

	field := reflect.ValueOf(&sen_md).Elem().FieldByName(name)
	chunkedStructSlices(field.Addr().Interface(), number_pings)

	return sen_md
}

// appendSensorMetadata appends the one populated sensor-specific struct
// (selected by sensor_id) from src onto sm, field by field.
func (sm *SensorMetadata) appendSensorMetadata(src *SensorMetadata, sensor_id SubRecordID) error {
	name := sensorSpecificFieldName(sensor_id)
	if name == "" {
		return nil
	}

	dst := reflect.ValueOf(sm).Elem().FieldByName(name)
	from := reflect.ValueOf(src).Elem().FieldByName(name)
	appendStructFields(dst, from)

	return nil
}

// writeSensorMetadata serialises the one populated sensor-specific struct
// (selected by sensor_id) into the PING_ID-dimensioned dense array.
func (sm *SensorMetadata) writeSensorMetadata(ctx *tiledb.Context, array *tiledb.Array, sensor_id SubRecordID, ping_start, ping_end uint64) error {
	name := sensorSpecificFieldName(sensor_id)
	if name == "" {
		return nil
	}

	field := reflect.ValueOf(sm).Elem().FieldByName(name)
	return writeDensePingRange(ctx, array, field.Addr().Interface(), ping_start, ping_end)
}

type SensorImageryMetadata struct {
	EM3_imagery EM3Imagery
	EM4_imagery EM4Imagery
}

// sensorImageryFieldName is the imagery-side counterpart of
// sensorSpecificFieldName; only dialects that also carry an intensity
// time series (§3's "inner imagery-specific subrecord") have an entry.
func sensorImageryFieldName(sensor_id SubRecordID) string {
	switch sensor_id {
	case EM710, EM302, EM122, EM2040:
		return "EM4_imagery"
	case EM120, EM300, EM1002, EM2000, EM3000, EM3002, EM3000D, EM3002D, EM121A_SIS:
		return "EM3_imagery"
	}
	return ""
}

// newSensorImageryMetadata is a helper func for initialising SensorImageryMetadata where
// the specific sensor will contain slices initialised to the number of pings
// required.
// This func is only utilised when processing groups of pings to form a single
// cohesive block of data.
func newSensorImageryMetadata(number_pings int, sensor_id SubRecordID) (sen_img_md SensorImageryMetadata) {
	sen_img_md = SensorImageryMetadata{}

	name := sensorImageryFieldName(sensor_id)
	if name == "" {
		return sen_img_md
	}

	field := reflect.ValueOf(&sen_img_md).Elem().FieldByName(name)
	chunkedStructSlices(field.Addr().Interface(), number_pings)

	return sen_img_md
}

// appendSensorImageryMetadata appends the one populated imagery struct
// (selected by sensor_id) from src onto sim, field by field.
func (sim *SensorImageryMetadata) appendSensorImageryMetadata(src *SensorImageryMetadata, sensor_id SubRecordID) error {
	name := sensorImageryFieldName(sensor_id)
	if name == "" {
		return nil
	}

	dst := reflect.ValueOf(sim).Elem().FieldByName(name)
	from := reflect.ValueOf(src).Elem().FieldByName(name)
	appendStructFields(dst, from)

	return nil
}

// writeSensorImageryMetadata serialises the one populated imagery struct
// (selected by sensor_id) into the PING_ID-dimensioned dense array.
func (sim *SensorImageryMetadata) writeSensorImageryMetadata(ctx *tiledb.Context, array *tiledb.Array, sensor_id SubRecordID, ping_start, ping_end uint64) error {
	name := sensorImageryFieldName(sensor_id)
	if name == "" {
		return nil
	}

	field := reflect.ValueOf(sim).Elem().FieldByName(name)
	return writeDensePingRange(ctx, array, field.Addr().Interface(), ping_start, ping_end)
}

// appendStructFields grows every exported slice field of dst with the
// matching field from src. Both values must be the same struct type
// (e.g. two Em4 values) addressed via reflect.Value of the struct itself,
// not a pointer - mirrors the per-field loop appendPingData already uses
// for PingHeaders, generalised so each sensor dialect doesn't need its
// own copy.
func appendStructFields(dst, src reflect.Value) {
	t := dst.Type()
	for i := 0; i < dst.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		df := dst.Field(i)
		sf := src.Field(i)
		df.Set(reflect.AppendSlice(df, sf))
	}
}
