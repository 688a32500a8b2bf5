package gsf

import (
	"errors"
	"math"
	"reflect"
	"strings"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	"github.com/samber/lo"
	stgpsr "github.com/yuin/stagparser"
)

var ErrCreateAttributeTdb = errors.New("Error Creating Attribute for TileDB Array")
var ErrCreateMdDenseTdb = errors.New("Error Creating Dense Metadata TileDB Array")
var ErrCreateBeamSparseTdb = errors.New("Error Creating Beam Sparse TileDB Array")
var ErrCreateSchemaTdb = errors.New("Error Creating TileDB Schema")

// pascalCase convert a string separated by underscores into
// PascalCase. For example, ALPHA_BETA_GAMMA -> AlphaBetaGamma.
func pascalCase(name string) (result string) {
	result = ""
	split := strings.Split(name, "_")

	for _, v := range split {
		low := strings.ToLower(v)
		result += strings.ToUpper(string(low[0])) + low[1:]
	}

	return result
}

func fieldNames(t any) (names []string) {
	names = make([]string, 0, 10)

	btype := reflect.TypeOf(t)
	for i := 0; i < btype.NumField(); i++ {
		if btype.Field(i).IsExported() {
			names = append(names, btype.Field(i).Name)
		}
	}
	return names
}

// chunkedStructSlices is a helper func for initialising structs containing
// slices to a defined capacity. For example PingData where the slices will be of
// total number of beams in capacity. Or for SensorMetadata which will be of
// npings in capacity. This ideally should reduce any overhead in reallocation
// during appending.
// However, unexported fields won't be handled. Will need to handle those outside
// on a case by case basis.
func chunkedStructSlices(t any, length int) error {
	values := reflect.ValueOf(t).Elem()
	types := reflect.TypeOf(t).Elem()
	for i := 0; i < values.NumField(); i++ {
		field := values.Field(i)
		t := field.Type()
		if types.Field(i).IsExported() {
			field.Set(reflect.MakeSlice(t, 0, length))
		}
	}

	return nil
}

// chunkedBeamArray is a helper func for initialising structs containing
// slices to a defined capacity. For example PingData where the slices will be of
// total number of beams in capacity.
// This ideally should reduce any overhead in reallocation during appending.
// Only those fields listed in the parameter beam_names will be set.
func chunkedBeamArray(t any, length int, beam_names []string) error {
	values := reflect.ValueOf(t).Elem()
	for _, v := range beam_names {
		field := values.FieldByName(v)
		ftype := field.Type()
		field.Set(reflect.MakeSlice(ftype, 0, length))
	}
	return nil
}

func schemaAttrs(t any, schema *tiledb.ArraySchema, ctx *tiledb.Context) error {
	var (
		field_tdb_defs map[string]stgpsr.Definition
		def            stgpsr.Definition
		status         bool
	)
	values := reflect.ValueOf(t).Elem()
	types := values.Type()
	filt_defs, _ := stgpsr.ParseStruct(t, "filters")
	tdb_defs, _ := stgpsr.ParseStruct(t, "tiledb")

	// process every field in the struct
	for i := 0; i < values.NumField(); i++ {
		name := types.Field(i).Name

		field_filt_defs := filt_defs[name]

		// a mapping just seemed easier to pull required defs
		// rather than a simple listing
		field_tdb_defs = make(map[string]stgpsr.Definition)
		for _, v := range tdb_defs[name] {
			field_tdb_defs[v.Name()] = v
		}

		// pull the field type and ignore dimension fields
		def, status = field_tdb_defs["ftype"]
		if status == false {
			return errors.Join(ErrCreateAttributeTdb, errors.New("ftype tag not found"))
		}
		ftype, _ := def.Attribute("ftype")
		if ftype == "dim" {
			// ignore dimensions
			continue
		}

		err := CreateAttr(name, field_filt_defs, field_tdb_defs, schema, ctx)
		if err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
	}
	return nil
}

// sensorSpecificAttrs adds the tiledb attributes for the one
// sensor-specific struct a given sensor id decodes into (§4.D). Ids with
// no wired struct (GeoSwath+, Klein5410, Reson 7125/T-series, EM3-raw,
// DeltaT, R2Sonic, KMALL, the single-beam dialects, and the obsolete
// SASS/TypeIII/SB_AMP/SEABEAM_2112 ones) contribute no attributes; per
// §4.D that is a legitimate skip, not an error, mirrored by the ping
// decode switch consuming and discarding those payloads the same way.
func sensorSpecificAttrs(sensor_id SubRecordID, schema *tiledb.ArraySchema, ctx *tiledb.Context) (err error) {
	switch sensor_id {
	case SEABEAM:
		err = schemaAttrs(&Seabeam{}, schema, ctx)
	case EM12:
		err = schemaAttrs(&Em12{}, schema, ctx)
	case EM100:
		err = schemaAttrs(&Em100{}, schema, ctx)
	case EM950:
		err = schemaAttrs(&Em950{}, schema, ctx)
	case EM121A:
		err = schemaAttrs(&Em121A{}, schema, ctx)
	case EM121:
		err = schemaAttrs(&Em121{}, schema, ctx)
	case SEABAT:
		err = schemaAttrs(&SeaBat{}, schema, ctx)
	case SEABAT_II:
		err = schemaAttrs(&SeaBatII{}, schema, ctx)
	case SEABAT_8101:
		err = schemaAttrs(&SeaBat8101{}, schema, ctx)
	case EM1000:
		err = schemaAttrs(&Em1000{}, schema, ctx)
	case ELAC_MKII:
		err = schemaAttrs(&ElacMkII{}, schema, ctx)
	case CMP_SAAS: // CMP (compressed), should be used in place of SASS
		err = schemaAttrs(&CmpSass{}, schema, ctx)
	case RESON_8101, RESON_8111, RESON_8124, RESON_8125, RESON_8150, RESON_8160:
		err = schemaAttrs(&Reson8100{}, schema, ctx)
	case EM120, EM300, EM1002, EM2000, EM3000, EM3002, EM3000D, EM3002D, EM121A_SIS:
		err = schemaAttrs(&Em3{}, schema, ctx)
	case EM710, EM302, EM122, EM2040:
		err = schemaAttrs(&EM4{}, schema, ctx)
	case SR_NOT_DEFINED: // the spec makes no mention of ID 154
		return ErrUnrecognizedSubrecord
	}

	return err
}

// sensorImageryAttrs is the imagery-side counterpart of
// sensorSpecificAttrs, only exercised when the ping also carries an
// intensity time series.
func sensorImageryAttrs(sensor_id SubRecordID, schema *tiledb.ArraySchema, ctx *tiledb.Context) (err error) {
	switch sensor_id {
	case EM120, EM120_RAW, EM300, EM300_RAW, EM1002, EM1002_RAW, EM2000, EM2000_RAW, EM3000, EM3000_RAW, EM3002, EM3002_RAW, EM3000D, EM3000D_RAW, EM3002D, EM3002D_RAW, EM121A_SIS, EM121A_SIS_RAW:
		err = schemaAttrs(&EM3Imagery{}, schema, ctx)
	case EM122, EM302, EM710, EM2040:
		err = schemaAttrs(&EM4Imagery{}, schema, ctx)
	}

	return err
}

func mdSchemaAttrs(sensor_id SubRecordID, contains_intensity bool, schema *tiledb.ArraySchema, ctx *tiledb.Context) (err error) {
	err = sensorSpecificAttrs(sensor_id, schema, ctx)
	if err != nil {
		return err
	}

	if contains_intensity {
		err = sensorImageryAttrs(sensor_id, schema, ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// newDensePingSchema builds the PING_ID-dimensioned dense schema shared by
// PingHeaders, SensorMetadata and SensorImageryMetadata - same domain,
// same filters, same dimension - before any attributes are attached. The
// callers (pingDenseSchema's combined layout, and pingTdbArrays'
// three separate arrays) each add their own attrs on top.
func newDensePingSchema(ctx *tiledb.Context, npings uint64) (*tiledb.ArraySchema, error) {
	// an arbitrary choice; maybe at a future date we evaluate a good number
	tile_sz := uint64(math.Min(float64(50000), float64(npings)))

	// array domain
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer domain.Free()

	// setup dimension options
	// using a combination of delta filter (ascending rows) and zstandard
	dim, err := tiledb.NewDimension(ctx, "PING_ID", tiledb.TILEDB_UINT64, []uint64{0, npings - uint64(1)}, tile_sz)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim.Free()

	dim_filters, err := tiledb.NewFilterList(ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim_filters.Free()

	// TODO; might be worth setting a window size
	dim_f1, err := tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_POSITIVE_DELTA)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim_f1.Free()

	level := int32(16)
	dim_f2, err := ZstdFilter(ctx, level)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim_f2.Free()

	// attach filters to the pipeline
	err = AddFilters(dim_filters, dim_f1, dim_f2)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	err = dim.SetFilterList(dim_filters)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = domain.AddDimensions(dim)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	// setup schema
	schema, err := tiledb.NewArraySchema(ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	// defer schema.Free()

	err = schema.SetDomain(domain)
	if err != nil {
		return nil, errors.Join(ErrCreateAttitudeTdb, err)
	}

	// cell and tile ordering was an arbitrary choice
	err = schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	return schema, nil
}

// pingDenseSchema builds the combined dense schema used by the
// PingArrays export path: PingHeaders, sensor-specific and sensor
// imagery attributes all on one PING_ID-dimensioned array.
func pingDenseSchema(ctx *tiledb.Context, sensor_id SubRecordID, npings uint64, contains_intensity bool) (*tiledb.ArraySchema, error) {
	schema, err := newDensePingSchema(ctx, npings)
	if err != nil {
		return nil, err
	}

	// add the struct fields as tiledb attributes
	// ping header, sensor_metadata, sensor_imagery_metadata
	err = schemaAttrs(&PingHeaders{}, schema, ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = mdSchemaAttrs(sensor_id, contains_intensity, schema, ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	return schema, nil
}

// pingTdbArrays creates the four TileDB arrays SbpToTileDB writes into:
// PingHeaders and SensorMetadata/SensorImageryMetadata each get their own
// PING_ID-dimensioned dense array (so a reader pulling just sensor
// metadata doesn't pay for ping headers), and beam data gets the sparse
// point-cloud array keyed by longitude/latitude.
func (fi *FileInfo) pingTdbArrays(ph_ctx, s_md_ctx, si_md_ctx, bd_ctx *tiledb.Context, ph_uri, s_md_uri, si_md_uri, bd_uri string) error {
	rec_name := RecordNames[SWATH_BATHYMETRY_PING]
	npings := fi.Record_Counts[rec_name]
	sensor_id := SubRecordID(fi.Metadata.Sensor_Info.Sensor_ID)
	beam_subrecords := fi.SubRecord_Schema
	contains_intensity := lo.Contains(beam_subrecords, SubRecordNames[INTENSITY_SERIES])

	ph_schema, err := newDensePingSchema(ph_ctx, npings)
	if err != nil {
		return err
	}
	err = schemaAttrs(&PingHeaders{}, ph_schema, ph_ctx)
	if err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}
	if err = createTdbArray(ph_ctx, ph_uri, ph_schema); err != nil {
		return err
	}

	s_md_schema, err := newDensePingSchema(s_md_ctx, npings)
	if err != nil {
		return err
	}
	err = sensorSpecificAttrs(sensor_id, s_md_schema, s_md_ctx)
	if err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}
	if err = createTdbArray(s_md_ctx, s_md_uri, s_md_schema); err != nil {
		return err
	}

	if contains_intensity {
		si_md_schema, err := newDensePingSchema(si_md_ctx, npings)
		if err != nil {
			return err
		}
		err = sensorImageryAttrs(sensor_id, si_md_schema, si_md_ctx)
		if err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
		if err = createTdbArray(si_md_ctx, si_md_uri, si_md_schema); err != nil {
			return err
		}
	}

	beam_schema, err := beamSparseSchema(contains_intensity, beam_subrecords, bd_ctx)
	if err != nil {
		return err
	}
	return createTdbArray(bd_ctx, bd_uri, beam_schema)
}

// createTdbArray materialises a checked schema at uri, freeing both the
// schema and the transient array handle used to create it.
func createTdbArray(ctx *tiledb.Context, uri string, schema *tiledb.ArraySchema) error {
	defer schema.Free()

	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateSchemaTdb, err)
	}
	defer array.Free()

	if err = array.Create(schema); err != nil {
		return errors.Join(ErrCreateSchemaTdb, err)
	}

	return nil
}

func beamArrayAttrs(contains_intensity bool, beam_subrecords []string, schema *tiledb.ArraySchema, ctx *tiledb.Context) (err error) {
	var (
		field_tdb_defs map[string]stgpsr.Definition
		def            stgpsr.Definition
		status         bool
	)

	ba := BeamArray{}
	beam_names := make([]string, len(beam_subrecords))

	// cleanup subrecord names to match the BeamArray fields names
	for k, v := range beam_subrecords {
		beam_names[k] = pascalCase(v)
	}

	// values := reflect.ValueOf(ba)
	// types := values.Type()
	filt_defs, _ := stgpsr.ParseStruct(ba, "filters")
	tdb_defs, _ := stgpsr.ParseStruct(ba, "tiledb")

	// processing the beam array subrecords
	for _, name := range beam_names {

		// ignore intensity series as it needs to be handled by a separate type
		if name == "IntensitySeries" {
			continue
		}

		field_filt_defs := filt_defs[name]

		field_tdb_defs = make(map[string]stgpsr.Definition)
		for _, v := range tdb_defs[name] {
			field_tdb_defs[v.Name()] = v
		}

		// pull the field type and ignore dimension fields
		def, status = field_tdb_defs["ftype"]
		if status == false {
			return errors.Join(ErrCreateAttributeTdb, errors.New("ftype tag not found"))
		}
		ftype, _ := def.Attribute("ftype")
		if ftype == "dim" {
			// ignore dimensions
			continue
		}

		err := CreateAttr(name, field_filt_defs, field_tdb_defs, schema, ctx)
		if err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
	}

	// processing the brb intensity data
	if contains_intensity {
		err = schemaAttrs(&BrbIntensity{}, schema, ctx)
		if err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
	}

	// processing the basic ping info (ping id, beam id)
	err = schemaAttrs(&PingBeamNumbers{}, schema, ctx)
	if err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}

	return nil
}

// beamSparseSchema sets up a sparse array schema for the beam array data
// and if it exists, the brb intensity data.
// Longitude and Latitude are the dimensional axes, denoted by X & Y.
// The schema is set to allow duplicates, hilbert for cell ordering, row-major
// for tile ordering.
func beamSparseSchema(contains_intensity bool, beam_subrecords []string, ctx *tiledb.Context) (schema *tiledb.ArraySchema, err error) {
	// array domain
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer domain.Free()

	tile_sz := uint64(1000)
	min_f64 := math.MaxFloat64 * -1

	// setup lon/lat (X/Y) dimensions
	xdim, err := tiledb.NewDimension(ctx, "X", tiledb.TILEDB_FLOAT64, []float64{min_f64, math.MaxFloat64}, tile_sz)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer xdim.Free()

	ydim, err := tiledb.NewDimension(ctx, "Y", tiledb.TILEDB_FLOAT64, []float64{min_f64, math.MaxFloat64}, tile_sz)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer ydim.Free()

	dim_filters, err := tiledb.NewFilterList(ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim_filters.Free()

	level := int32(16)
	dim_filt, err := ZstdFilter(ctx, level)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}
	defer dim_filt.Free()

	// attach dimension filters to the pipeline
	err = AddFilters(dim_filters, dim_filt)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = xdim.SetFilterList(dim_filters)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = ydim.SetFilterList(dim_filters)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = domain.AddDimensions(xdim, ydim)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	// setup schema
	schema, err = tiledb.NewArraySchema(ctx, tiledb.TILEDB_SPARSE)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}
	// defer schema.Free()

	err = schema.SetDomain(domain)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	err = schema.SetCapacity(100_000)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	err = schema.SetCellOrder(tiledb.TILEDB_HILBERT)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	err = schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	err = schema.SetAllowsDups(true)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	err = beamArrayAttrs(contains_intensity, beam_subrecords, schema, ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	err = schema.Check()
	if err != nil {
		return nil, errors.Join(ErrCreateAttributeTdb, err)
	}

	return schema, nil
}

func (fi *FileInfo) pingSchemas(dense_ctx, sparse_ctx *tiledb.Context) (md_dense_schema, beam_sparse_schema *tiledb.ArraySchema, err error) {
	beam_subrecords := fi.SubRecord_Schema
	contains_intensity := lo.Contains(beam_subrecords, SubRecordNames[INTENSITY_SERIES])

	rec_name := RecordNames[SWATH_BATHYMETRY_PING]
	npings := fi.Record_Counts[rec_name]

	// cleanup subrecord names to match the BeamArray fields names
	// for k, v := range beam_names {
	// 	beam_names[k] = pascalCase(v)
	// }

	// if contains_intensity {
	// 	btype := reflect.TypeOf(BrbIntensity{})
	// 	for i := 0; i < btype.NumField(); i++ {
	// 		if btype.Field(i).IsExported() {
	// 			beam_names = append(beam_names, btype.Field(i).Name)
	// 		}
	// 	}
	// }

	sensor_id := SubRecordID(fi.Metadata.Sensor_Info.Sensor_ID)

	// ping dense array
	md_dense_schema, err = pingDenseSchema(dense_ctx, sensor_id, npings, contains_intensity)
	if err != nil {
		return nil, nil, err
	}
	// defer dense_schema.Free()
	// md_names = md_fields(sensor_id, contains_intensity, schema, ctx)

	beam_sparse_schema, err = beamSparseSchema(contains_intensity, beam_subrecords, sparse_ctx)
	if err != nil {
		return nil, nil, err
	}

	return md_dense_schema, beam_sparse_schema, nil
}

func (fi *FileInfo) PingArrays(dense_file_uri, sparse_file_uri string, dense_ctx, sparse_ctx *tiledb.Context) (beam_names, md_names []string, err error) {
	var (
	// config *tiledb.Config
	)

	// get a generic config if no path provided
	// if config_uri == "" {
	// 	config, err = tiledb.NewConfig()
	// 	if err != nil {
	// 		return nil, nil, err
	// 	}
	// } else {
	// 	config, err = tiledb.LoadConfig(config_uri)
	// 	if err != nil {
	// 		return nil, nil, err
	// 	}
	// }

	// defer config.Free()

	// // contexts for both the sparse and dense arrays
	// dense_ctx, err := tiledb.NewContext(config)
	// if err != nil {
	// 	return nil, nil, err
	// }
	// defer dense_ctx.Free()

	// sparse_ctx, err := tiledb.NewContext(config)
	// if err != nil {
	// 	return nil, nil, err
	// }
	// defer sparse_ctx.Free()

	md_dense_schema, beam_sparse_schema, err := fi.pingSchemas(dense_ctx, sparse_ctx)
	if err != nil {
		return nil, nil, err
	}
	defer md_dense_schema.Free()
	defer beam_sparse_schema.Free()

	// create the empty arrays on disk, object store, etc
	md_dense_array, err := tiledb.NewArray(dense_ctx, dense_file_uri)
	if err != nil {
		return nil, nil, errors.Join(ErrCreateMdDenseTdb, err)
	}
	defer md_dense_array.Free()

	err = md_dense_array.Create(md_dense_schema)
	if err != nil {
		return nil, nil, errors.Join(ErrCreateMdDenseTdb, err)
	}

	beam_sparse_array, err := tiledb.NewArray(sparse_ctx, sparse_file_uri)
	if err != nil {
		return nil, nil, errors.Join(ErrCreateBeamSparseTdb, err)
	}
	defer beam_sparse_array.Free()

	err = beam_sparse_array.Create(beam_sparse_schema)
	if err != nil {
		return nil, nil, errors.Join(ErrCreateBeamSparseTdb, err)
	}

	// field names for each array schema
	// sensor metadata
	attrs, err := md_dense_schema.Attributes()
	md_names = make([]string, len(attrs))
	for k, v := range attrs {
		name, err := v.Name()
		if err != nil {
			return nil, nil, err
		}
		md_names[k] = name
	}

	// beam sparse
	attrs, err = beam_sparse_schema.Attributes()
	beam_names = make([]string, len(attrs))
	for k, v := range attrs {
		name, err := v.Name()
		if err != nil {
			return nil, nil, err
		}
		beam_names[k] = name
	}

	return beam_names, md_names, nil
}
