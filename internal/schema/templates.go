package schema

// Zero-value section templates matching the element shape of each repeatable
// section. Editors pass these to document.InsertAt when adding a row.

// EmptyExperience returns a zero-value profile experience entry.
func EmptyExperience() Document {
	return Document{
		"company":     "",
		"position":    "",
		"location":    "",
		"startDate":   "",
		"endDate":     "",
		"description": "",
	}
}

// EmptyResumeExperience returns a zero-value resume experience entry.
func EmptyResumeExperience() Document {
	return Document{
		"company":   "",
		"position":  "",
		"location":  "",
		"startDate": "",
		"endDate":   "",
		"bullets":   make([]any, 0),
	}
}

// EmptyEducation returns a zero-value education entry.
func EmptyEducation() Document {
	return Document{
		"institution":    "",
		"degree":         "",
		"field":          "",
		"location":       "",
		"graduationDate": "",
		"gpa":            "",
	}
}

// EmptyProject returns a zero-value project entry.
func EmptyProject() Document {
	return Document{
		"name":         "",
		"description":  "",
		"technologies": make([]any, 0),
	}
}

// EmptyCertification returns a zero-value certification entry.
func EmptyCertification() Document {
	return Document{
		"name":   "",
		"issuer": "",
		"date":   "",
	}
}

// SectionTemplate returns the zero-value element for a named repeatable
// section, or nil if the section is not repeatable in the given kind.
func SectionTemplate(kind Kind, section string) Document {
	switch section {
	case "experience":
		if kind == KindResume {
			return EmptyResumeExperience()
		}
		return EmptyExperience()
	case "education":
		return EmptyEducation()
	case "projects":
		return EmptyProject()
	case "certifications":
		return EmptyCertification()
	}
	return nil
}
