package workflow

import (
	"fmt"
	"strings"

	"go-leave-approval/internal/orgrole"
)

type ConditionKind string

const (
	KindAll   ConditionKind = "all"
	KindAny   ConditionKind = "any"
	KindIn    ConditionKind = "in"
	KindRange ConditionKind = "range"
	KindFlag  ConditionKind = "flag"
)

type Field string

const (
	FieldPosition    Field = "position"
	FieldGrade       Field = "grade"
	FieldUnit        Field = "unit"
	FieldDirectorate Field = "directorate"
	FieldDutyStation Field = "duty_station"
	FieldLeaveType   Field = "leave_type"
	FieldDays        Field = "days"
)

type Flag string

const (
	FlagChiefDirector    Flag = "chief_director"
	FlagDirector         Flag = "director"
	FlagUnitHead         Flag = "unit_head"
	FlagHRMD             Flag = "hrmd"
	FlagIndependentUnit  Flag = "independent_unit"
	FlagHeadOfDepartment Flag = "head_of_department"
)

// Condition is a small expression tree. The zero value matches everything.
//
//	{"kind":"all","children":[
//	  {"kind":"in","field":"leave_type","values":["Annual","Study"]},
//	  {"kind":"range","field":"days","min":10},
//	  {"kind":"flag","flag":"hrmd","expect":false}]}
type Condition struct {
	Kind     ConditionKind `json:"kind,omitempty"`
	Field    Field         `json:"field,omitempty"`
	Values   []string      `json:"values,omitempty"`
	Min      *float64      `json:"min,omitempty"`
	Max      *float64      `json:"max,omitempty"`
	Flag     Flag          `json:"flag,omitempty"`
	Expect   *bool         `json:"expect,omitempty"`
	Children []Condition   `json:"children,omitempty"`
}

// Subject is what a condition is evaluated against.
type Subject struct {
	Profile     orgrole.Profile
	DutyStation string
	LeaveType   string
	Days        float64
}

func (c Condition) IsZero() bool {
	return c.Kind == ""
}

func (c Condition) Match(s Subject) bool {
	switch c.Kind {
	case "":
		return true
	case KindAll:
		for _, child := range c.Children {
			if !child.Match(s) {
				return false
			}
		}
		return true
	case KindAny:
		for _, child := range c.Children {
			if child.Match(s) {
				return true
			}
		}
		return false
	case KindIn:
		return c.matchIn(s)
	case KindRange:
		if c.Min != nil && s.Days < *c.Min {
			return false
		}
		if c.Max != nil && s.Days > *c.Max {
			return false
		}
		return true
	case KindFlag:
		want := true
		if c.Expect != nil {
			want = *c.Expect
		}
		return flagValue(c.Flag, s.Profile) == want
	}
	return false
}

func (c Condition) matchIn(s Subject) bool {
	var actual string
	var equal func(a, b string) bool

	switch c.Field {
	case FieldPosition:
		actual, equal = s.Profile.Position, orgrole.SameTitle
	case FieldGrade:
		actual, equal = s.Profile.Grade, strings.EqualFold
	case FieldUnit:
		actual, equal = s.Profile.Unit, orgrole.SameUnit
	case FieldDirectorate:
		actual, equal = s.Profile.Directorate, orgrole.SameDirectorate
	case FieldDutyStation:
		actual, equal = s.DutyStation, strings.EqualFold
	case FieldLeaveType:
		actual, equal = s.LeaveType, strings.EqualFold
	default:
		return false
	}

	if strings.TrimSpace(actual) == "" {
		return false
	}
	for _, v := range c.Values {
		if equal(actual, v) {
			return true
		}
	}
	return false
}

func flagValue(f Flag, p orgrole.Profile) bool {
	switch f {
	case FlagChiefDirector:
		return orgrole.IsChiefDirector(p.Position, p.Grade)
	case FlagDirector:
		return orgrole.IsDirector(p.Position, p.Grade)
	case FlagUnitHead:
		return orgrole.IsUnitHead(p.Position)
	case FlagHRMD:
		return orgrole.IsHRMDStaff(p.Unit, p.Directorate)
	case FlagIndependentUnit:
		return orgrole.IsIndependentUnit(p.Unit)
	case FlagHeadOfDepartment:
		return orgrole.IsHeadOfDepartment(p.Position, p.Grade, p.Unit, p.Directorate)
	}
	return false
}

// Validate rejects unknown kinds, fields and flags, and empty set or group nodes.
func (c Condition) Validate() error {
	switch c.Kind {
	case "":
		return nil
	case KindAll, KindAny:
		if len(c.Children) == 0 {
			return fmt.Errorf("%s condition needs at least one child", c.Kind)
		}
		for i, child := range c.Children {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("children[%d]: %w", i, err)
			}
		}
		return nil
	case KindIn:
		switch c.Field {
		case FieldPosition, FieldGrade, FieldUnit, FieldDirectorate, FieldDutyStation, FieldLeaveType:
		default:
			return fmt.Errorf("field %q cannot be used with %q", c.Field, KindIn)
		}
		if len(c.Values) == 0 {
			return fmt.Errorf("%q condition on %q needs values", KindIn, c.Field)
		}
		return nil
	case KindRange:
		if c.Field != FieldDays {
			return fmt.Errorf("range condition only supports %q", FieldDays)
		}
		if c.Min == nil && c.Max == nil {
			return fmt.Errorf("range condition needs min or max")
		}
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			return fmt.Errorf("range min %.1f is greater than max %.1f", *c.Min, *c.Max)
		}
		return nil
	case KindFlag:
		switch c.Flag {
		case FlagChiefDirector, FlagDirector, FlagUnitHead, FlagHRMD, FlagIndependentUnit, FlagHeadOfDepartment:
			return nil
		}
		return fmt.Errorf("unknown flag %q", c.Flag)
	}
	return fmt.Errorf("unknown condition kind %q", c.Kind)
}
