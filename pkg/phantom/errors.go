package phantom

import "fmt"

var (
	// ErrInvalidGeometry non-positive or malformed shape or grid parameters.
	ErrInvalidGeometry = fmt.Errorf("invalidgeometry")
	// ErrMissingConfiguration required manager field unset at Initialize or Write.
	ErrMissingConfiguration = fmt.Errorf("missingconfiguration")
	// ErrInvalidState operation invoked outside its legal lifecycle state.
	ErrInvalidState = fmt.Errorf("invalidstate")
	// ErrSessionClosed operation invoked after Write.
	ErrSessionClosed = fmt.Errorf("sessionclosed")
	// ErrLabelConflict label rebound to a different material name.
	ErrLabelConflict = fmt.Errorf("labelconflict")
	// ErrNotInitialized operation requires prior Initialize.
	ErrNotInitialized = fmt.Errorf("notinitialized")
	// ErrInvalidDataType unsupported payload element type tag.
	ErrInvalidDataType = fmt.Errorf("invaliddatatype")
	// ErrIO output path unreadable or unwritable.
	ErrIO = fmt.Errorf("ioerror")
)
