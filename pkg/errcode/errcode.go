package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnknownConnectionError
	DBTableExistsCheckError
	DBExecError
	DBQueryError

	// Filter errors
	FilterUnknownRankError
	FilterUnknownLabelError
	FilterIndexOutOfRangeError
	FilterPeriodModeError
	FilterPeriodBoundMissingError
	FilterPeriodDateError
	FilterExtraPredicateError

	// Study area errors
	StudyAreaEmptyError
	StudyAreaGeometryError
	StudyAreaReadError

	// Report errors
	ReportUnknownKindError
	ReportUnknownAreaTypeError
	ReportOutputNameError
	ReportSourceError
	ReportTemplateError

	// Materialization errors
	MaterializeLockError
	MaterializeDropError
	MaterializeCreateError
	MaterializeKeyError
	MaterializeResumeError

	// Layer errors
	LayerInvalidError
	LayerEmptyError

	// Export errors
	ExportFormatError
	ExportWriteError

	// Registry errors
	RegistryReadError
	RegistryWriteError
	RegistryRefreshError

	// Command line errors
	CommandFlagError
)
