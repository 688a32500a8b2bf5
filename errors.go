package gsf

import (
	"errors"
)

var ErrCreateDimTdb = errors.New("Error Creating TileDB Dimension")
var ErrSensor = errors.New("Sensor Not Supported")
var ErrWriteSensorMd = errors.New("Error Writing Sensor Metadata")
var ErrSensorImgMetadata = errors.New("Error Reading Sensor Imagery Metadata")
var ErrCreateSvpTdb = errors.New("Error Creating SVP TileDB Array")
var ErrWriteSvpTdb = errors.New("Error Writing SVP TileDB Array")
var ErrFiltList = errors.New("Error Creating TileDB Filter List")
var ErrNewAttr = errors.New("Error Creating TileDB Attribute")
var ErrNewFilt = errors.New("Error Creating TileDB Filter")
var ErrSetFiltList = errors.New("Error Setting TileDB Filter List")
var ErrAddAttr = errors.New("Error Adding TileDB Attribute")
var ErrZstdFilt = errors.New("Error Creating TileDB ZStandard Filter")

// General decode error taxonomy; distinct sentinels so callers can
// errors.Is against the specific failure mode rather than string-matching.
var ErrShortBuffer = errors.New("GSF: buffer too short for requested read")
var ErrCorruptRecord = errors.New("GSF: corrupt record")
var ErrInvalidBeamCount = errors.New("GSF: invalid beam count")
var ErrBadScaleFactor = errors.New("GSF: missing or zero scale factor")
var ErrUnrecognizedSubrecord = errors.New("GSF: unrecognized subrecord id")
var ErrTooManyArraySubrecords = errors.New("GSF: too many array subrecords for one ping")
var ErrOpenFail = errors.New("GSF: failed to open file")
var ErrWriteFail = errors.New("GSF: write failed")
