package orgrole

import "strings"

var actingPrefixes = []string{"acting", "ag", "interim"}

// title normalizes a position and strips acting prefixes: "Ag. Chief Director" -> "chief director".
func title(position string) string {
	p := normalize(position)
	for _, prefix := range actingPrefixes {
		p = strings.TrimPrefix(p, prefix+" ")
	}
	return p
}

func hasWordPrefix(s, prefix string) bool {
	return s == prefix || strings.HasPrefix(s, prefix+" ")
}

func gradeIs(grade string, codes ...string) bool {
	g := strings.ToUpper(strings.TrimSpace(grade))
	for _, c := range codes {
		if g == c {
			return true
		}
	}
	return false
}

func IsChiefDirector(position, grade string) bool {
	return hasWordPrefix(title(position), "chief director") || gradeIs(grade, "CD", "CHIEF DIRECTOR")
}

// IsDirector excludes the chief director and deputy directors.
func IsDirector(position, grade string) bool {
	if IsChiefDirector(position, grade) {
		return false
	}
	return hasWordPrefix(title(position), "director") || gradeIs(grade, "DIR", "DIRECTOR")
}

func IsUnitHead(position string) bool {
	p := title(position)
	switch {
	case p == "unit head", p == "head of unit", strings.HasSuffix(p, " unit head"):
		return true
	case strings.HasPrefix(p, "head of department"), strings.HasPrefix(p, "head of directorate"):
		return false
	case strings.HasPrefix(p, "head of "), strings.HasPrefix(p, "head "):
		return true
	}
	return false
}

func IsIndependentUnit(unit string) bool {
	u, ok := LookupUnit(unit)
	return ok && u.Reporting == Independent
}

func IsHeadOfIndependentUnit(position, unit string) bool {
	return IsUnitHead(position) && IsIndependentUnit(unit)
}

// IsHeadOfDepartment is true for the director of a core directorate or the head of an independent unit.
func IsHeadOfDepartment(position, grade, unit, directorate string) bool {
	if IsDirector(position, grade) {
		d, ok := DirectorateOf(unit, directorate)
		if ok && d.Core {
			return true
		}
	}
	return IsHeadOfIndependentUnit(position, unit)
}

func IsHRMDUnit(unit string) bool {
	u, ok := LookupUnit(unit)
	if !ok {
		return false
	}
	d, ok := LookupDirectorate(u.Directorate)
	return ok && d.HRMD
}

// IsHRMDStaff also covers staff posted to the HRMD directorate without a unit.
func IsHRMDStaff(unit, directorate string) bool {
	if IsHRMDUnit(unit) {
		return true
	}
	d, ok := LookupDirectorate(directorate)
	return ok && d.HRMD
}

// ReportsDirectlyToChiefDirector covers independent units, units of the chief director's office,
// and staff posted to that office without a unit.
func ReportsDirectlyToChiefDirector(unit, directorate string) bool {
	if u, ok := LookupUnit(unit); ok {
		return u.Reporting != ReportsToDirectorate
	}
	d, ok := LookupDirectorate(directorate)
	return ok && d.Acronym == DirectorateOffice
}

func IsHRDirector(position, grade, unit, directorate string) bool {
	return IsDirector(position, grade) && IsHRMDStaff(unit, directorate)
}

// IsHROfficer is officer-class HRMD staff who is neither a director nor a unit head.
func IsHROfficer(position, grade, unit, directorate string) bool {
	if !IsHRMDStaff(unit, directorate) {
		return false
	}
	if IsChiefDirector(position, grade) || IsDirector(position, grade) || IsUnitHead(position) {
		return false
	}
	p := title(position)
	for _, t := range HROfficerTitles {
		if strings.Contains(p, t) {
			return true
		}
	}
	return false
}

func IsCriticalUnit(unit string) bool {
	u, ok := LookupUnit(unit)
	return ok && u.Critical
}

// RequiresActingOfficer lists the positions that cannot go on leave without a named stand-in.
func RequiresActingOfficer(position, grade, unit string) bool {
	return IsChiefDirector(position, grade) ||
		IsDirector(position, grade) ||
		IsUnitHead(position) ||
		IsCriticalUnit(unit)
}
