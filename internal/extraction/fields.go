// Package extraction derives the display fields of an outreach email from the
// job-parser and candidate-matching records.
//
// Upstream records are loosely shaped: every lookup tolerates missing keys,
// null values and sections of the wrong type, producing an empty field instead
// of an error.
package extraction

// NotAvailable is the upstream placeholder for a value the parser could not find.
const NotAvailable = "N/A"

// Job record sections, in lookup order
const (
	PrimarySection  = "Extracted"
	FallbackSection = "rawData"
)

// Job record field keys
const (
	KeyCompanyName   = "company_name"
	KeyJobPosition   = "job_position"
	KeyJobType       = "job_type"
	KeyWorkplaceType = "workplace_type"
	KeyJobLocation   = "job_location"
)

// Candidate record keys. Each logical value has two accepted spellings.
const (
	KeyFullName          = "full_name"
	KeyFullNameAlt       = "full name"
	KeyMatchingResult    = "matching_result"
	KeyComparisonComment = "comparison_comment"
	KeyComparisonAlt     = "comparison comment"
)

// Fields holds everything the composer needs from the two records.
type Fields struct {
	CompanyName   string
	JobPosition   string
	JobType       string
	WorkplaceType string
	JobLocation   string
	CandidateName string
	// Narrative is the raw comparison comment, before normalization.
	Narrative string
}

// Extract reads the job and candidate-match records. Neither record is modified.
func Extract(job, match map[string]any) Fields {
	return Fields{
		CompanyName:   jobField(job, KeyCompanyName),
		JobPosition:   jobField(job, KeyJobPosition),
		JobType:       blankIfNotAvailable(jobField(job, KeyJobType)),
		WorkplaceType: blankIfNotAvailable(jobField(job, KeyWorkplaceType)),
		JobLocation:   blankIfNotAvailable(jobField(job, KeyJobLocation)),
		CandidateName: firstText(match, KeyFullName, KeyFullNameAlt),
		Narrative:     firstText(section(match, KeyMatchingResult), KeyComparisonComment, KeyComparisonAlt),
	}
}

// jobField prefers the parser's extracted section and falls back to the raw section.
func jobField(job map[string]any, key string) string {
	if v := text(section(job, PrimarySection), key); v != "" {
		return v
	}
	return text(section(job, FallbackSection), key)
}

func blankIfNotAvailable(value string) string {
	if value == NotAvailable {
		return ""
	}
	return value
}
