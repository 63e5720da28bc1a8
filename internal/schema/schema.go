// Package schema defines the Profile and Resume document shapes and
// normalizes arbitrary JSON-like input against them.
package schema

// Kind selects which document shape to normalize or validate against.
type Kind string

const (
	// KindProfile is the durable career-history document.
	KindProfile Kind = "profile"
	// KindResume is a job-tailored, generated document.
	KindResume Kind = "resume"
)

// Document is a JSON-like record. Unknown fields are tolerated and passed
// through by all schema operations.
type Document = map[string]any

// Warning records a field that was replaced with its zero value during
// normalization because its value had the wrong kind.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// valueType enumerates the value kinds a schema field can hold.
type valueType int

const (
	typeString valueType = iota
	typeStringList
	typeRecord
	typeRecordList
)

// fieldSpec describes one known field of a document shape.
type fieldSpec struct {
	name   string
	typ    valueType
	fields []fieldSpec // sub-record fields for typeRecord and typeRecordList
}

var contactFields = []fieldSpec{
	{name: "name", typ: typeString},
	{name: "email", typ: typeString},
	{name: "phone", typ: typeString},
	{name: "location", typ: typeString},
	{name: "linkedin", typ: typeString},
	{name: "portfolio", typ: typeString},
}

var educationFields = []fieldSpec{
	{name: "institution", typ: typeString},
	{name: "degree", typ: typeString},
	{name: "field", typ: typeString},
	{name: "location", typ: typeString},
	{name: "graduationDate", typ: typeString},
	{name: "gpa", typ: typeString},
}

var skillsFields = []fieldSpec{
	{name: "technical", typ: typeStringList},
	{name: "tools", typ: typeStringList},
	{name: "soft", typ: typeStringList},
}

var certificationFields = []fieldSpec{
	{name: "name", typ: typeString},
	{name: "issuer", typ: typeString},
	{name: "date", typ: typeString},
}

var profileSpec = []fieldSpec{
	{name: "contact", typ: typeRecord, fields: contactFields},
	{name: "experience", typ: typeRecordList, fields: []fieldSpec{
		{name: "company", typ: typeString},
		{name: "position", typ: typeString},
		{name: "location", typ: typeString},
		{name: "startDate", typ: typeString},
		{name: "endDate", typ: typeString},
		{name: "description", typ: typeString},
	}},
	{name: "education", typ: typeRecordList, fields: educationFields},
	{name: "skills", typ: typeRecord, fields: skillsFields},
	{name: "projects", typ: typeRecordList, fields: []fieldSpec{
		{name: "name", typ: typeString},
		{name: "description", typ: typeString},
		{name: "technologies", typ: typeStringList},
	}},
	{name: "certifications", typ: typeRecordList, fields: certificationFields},
}

var resumeSpec = []fieldSpec{
	{name: "contact", typ: typeRecord, fields: contactFields},
	{name: "summary", typ: typeString},
	{name: "experience", typ: typeRecordList, fields: []fieldSpec{
		{name: "company", typ: typeString},
		{name: "position", typ: typeString},
		{name: "location", typ: typeString},
		{name: "startDate", typ: typeString},
		{name: "endDate", typ: typeString},
		{name: "bullets", typ: typeStringList},
	}},
	{name: "education", typ: typeRecordList, fields: educationFields},
	{name: "skills", typ: typeRecord, fields: skillsFields},
	{name: "projects", typ: typeRecordList, fields: []fieldSpec{
		{name: "name", typ: typeString},
		{name: "description", typ: typeString},
		{name: "technologies", typ: typeStringList},
		{name: "link", typ: typeString},
	}},
	{name: "certifications", typ: typeRecordList, fields: certificationFields},
}

// specFor returns the field specs for a document kind.
func specFor(kind Kind) []fieldSpec {
	if kind == KindResume {
		return resumeSpec
	}
	return profileSpec
}
