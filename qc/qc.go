// Package qc names the column families and columns of element rows, and the
// qualified "family:column" names the rows are keyed by.
//
// Key columns hold values from the other packages of this module: QC Key is a
// short key, Rooms is a short key array, XRooms and XParent are xref keys,
// and the systems family uses system ids as column names.
package qc

import "strings"

// Column families.
const (
	FamilyDTProperties = "z"
	FamilyLMV          = "0"
	FamilyStandard     = "n"
	FamilySystems      = "m"
	FamilyRefs         = "l"
	FamilyXrefs        = "x"
)

// Column names.
const (
	ColCategoryID      = "c"
	ColClassification  = "v"
	ColElementFlags    = "a"
	ColElevation       = "el"
	ColFamilyType      = "t"
	ColLevel           = "l"
	ColName            = "n"
	ColParent          = "p"
	ColRooms           = "r"
	ColUniformatClass  = "u"
	ColOClassification = OverridePrefix + ColClassification
)

// OverridePrefix marks a column set by a facility user over the value that
// came from the design model.
const OverridePrefix = "!"

// Key is the pseudo column holding the element short key.
const Key = "k"

// Qualified column names.
var (
	Classification  = Qualify(FamilyStandard, ColClassification)
	OClassification = Qualify(FamilyStandard, ColOClassification)
	ElementFlags    = Qualify(FamilyStandard, ColElementFlags)
	Elevation       = Qualify(FamilyStandard, ColElevation)
	FamilyType      = Qualify(FamilyRefs, ColFamilyType)
	Level           = Qualify(FamilyRefs, ColLevel)
	OLevel          = Qualify(FamilyRefs, Override(ColLevel))
	Name            = Qualify(FamilyStandard, ColName)
	OName           = Qualify(FamilyStandard, Override(ColName))
	Rooms           = Qualify(FamilyRefs, ColRooms)
	XRooms          = Qualify(FamilyXrefs, ColRooms)
	OXRooms         = Qualify(FamilyXrefs, Override(ColRooms))
	XParent         = Qualify(FamilyXrefs, ColParent)
)

// Qualify joins a family and a column name.
func Qualify(family, column string) string { return family + ":" + column }

// Override returns the user override form of a column name.
func Override(column string) string {
	if strings.HasPrefix(column, OverridePrefix) {
		return column
	}
	return OverridePrefix + column
}

// Split separates a qualified name into family and column. ok is false if q
// has no separator.
func Split(q string) (family, column string, ok bool) { return strings.Cut(q, ":") }

// SystemColumn returns the column under the systems family that marks an
// element as a member of the system with the given id.
func SystemColumn(systemID string) string { return Qualify(FamilySystems, systemID) }

// SystemOf returns the system id of a systems family column, ok is false for
// columns of other families.
func SystemOf(q string) (systemID string, ok bool) {
	family, column, found := Split(q)
	if !found || family != FamilySystems {
		return "", false
	}
	return column, true
}
