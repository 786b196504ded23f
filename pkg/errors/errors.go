package errors

// Error message constants for the lensort application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"
	ErrMsgFailedToDiffFile  = "failed to diff file"

	// Directory processing errors
	ErrMsgFailedToCheckPath      = "failed to check path"
	ErrMsgFailedToFindFiles      = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess   = "%d files failed to process"
	ErrMsgProblemsFound          = "ordering problems found"
	ErrMsgFailedToLoadConfig     = "failed to load config"
	ErrMsgUnknownRule            = "unknown rule %q"
	ErrMsgFailedToResolveRuleSev = "failed to resolve rule severity"
	ErrMsgFailedToInitLogger     = "failed to initialize logger"

	// Info/warning messages
	InfoMsgNoFilesFound  = "No source files found in: %s"
	InfoMsgFoundFiles    = "Found %d source files in: %s"
	InfoMsgProjectRoot   = "Project root: %s"
	InfoMsgNoProjectRoot = "No package.json found above %s, absolute imports resolve against the working directory"
	InfoMsgVersionBanner = "lensort version %s"
)
