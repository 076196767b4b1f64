package models

import "time"

// EntryType classifies a data entry. The set is closed; anything else is
// rejected at the boundary before the store is touched.
type EntryType string

const (
	EntryStudentRecords EntryType = "student_records"
	EntryFacultyData    EntryType = "faculty_data"
	EntryCourseInfo     EntryType = "course_information"
	EntryResearchData   EntryType = "research_data"
	EntryAdminInfo      EntryType = "administrative_info"
	EntryOther          EntryType = "other"
)

// EntryTypes lists every recognized entry type, in a stable order.
var EntryTypes = []EntryType{
	EntryStudentRecords,
	EntryFacultyData,
	EntryCourseInfo,
	EntryResearchData,
	EntryAdminInfo,
	EntryOther,
}

// Valid reports whether t is one of the recognized entry types.
func (t EntryType) Valid() bool {
	for _, known := range EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DataEntry is one unit of submitted departmental data. Immutable once
// stored; the id is assigned by the store and never reused.
type DataEntry struct {
	ID           int64
	DepartmentID int64
	EntryType    EntryType
	Content      string
	CreatedAt    time.Time
}

// ExportRow is a DataEntry joined with its department's display name, the
// shape consumed by the export engine.
type ExportRow struct {
	ID         int64
	Department string
	EntryType  EntryType
	Content    string
	CreatedAt  time.Time
}
