package sheetpeek

// DefaultKeywords flag columns holding customer information.
var DefaultKeywords = []string{
	"name", "buyer", "customer", "recipient", "ship", "city", "email", "address",
}

// DefaultSampleRows is the number of data rows read by the sample command.
const DefaultSampleRows = 5

// Parms holds the input parameters
type Parms struct {
	// Files to be analyzed, in order
	Files []string
	// Keywords: lowercase substrings that flag a customer column
	Keywords []string
	// Exclude: columns containing any of these words are never flagged
	Exclude []string
	// Fuzzy enables approximate keyword matching
	Fuzzy bool
	// SampleRows: data rows read by the sample command
	SampleRows int
	// Sheet to read (first sheet if empty)
	Sheet string
	// Charset of legacy .xls files (utf-8 if empty)
	Charset string
	// Format of the report (text/yaml)
	Format string
	// Verbose enables debug logs on stderr
	Verbose bool
}
