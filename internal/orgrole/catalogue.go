package orgrole

import "strings"

// Reporting describes whom a unit answers to.
type Reporting int

const (
	ReportsToDirectorate Reporting = iota
	ReportsToChiefDirector
	Independent
)

type Directorate struct {
	Name    string
	Acronym string
	Core    bool
	HRMD    bool
}

type Unit struct {
	Name        string
	Directorate string // acronym, empty when the unit sits outside every directorate
	Reporting   Reporting
	Critical    bool
	Aliases     []string
}

const (
	DirectorateFA     = "F&A"
	DirectorateHRMD   = "HRMD"
	DirectoratePPBME  = "PPBMED"
	DirectorateRSIM   = "RSIM"
	DirectorateOffice = "OCD"
)

var Directorates = []Directorate{
	{Name: "Finance & Administration", Acronym: DirectorateFA, Core: true},
	{Name: "Human Resource Management & Development", Acronym: DirectorateHRMD, Core: true, HRMD: true},
	{Name: "Policy Planning, Budgeting, Monitoring & Evaluation", Acronym: DirectoratePPBME, Core: true},
	{Name: "Research, Statistics & Information Management", Acronym: DirectorateRSIM, Core: true},
	{Name: "Office of the Chief Director", Acronym: DirectorateOffice},
}

var Units = []Unit{
	{Name: "Budget Unit", Directorate: DirectorateFA},
	{Name: "Accounts Unit", Directorate: DirectorateFA, Critical: true, Aliases: []string{"Finance Unit", "Treasury Unit"}},
	{Name: "General Services Unit", Directorate: DirectorateFA, Aliases: []string{"Administration Unit", "Estate Unit", "Transport Unit"}},
	{Name: "Procurement Unit", Directorate: DirectorateFA, Critical: true, Aliases: []string{"Stores Unit"}},

	{Name: "Human Resource Unit", Directorate: DirectorateHRMD, Aliases: []string{"HR Unit", "Human Resource Management Unit", "Personnel Unit"}},
	{Name: "Training & Development Unit", Directorate: DirectorateHRMD, Aliases: []string{"Training Unit", "Welfare Unit"}},

	{Name: "Policy Planning Unit", Directorate: DirectoratePPBME, Aliases: []string{"Planning Unit"}},
	{Name: "Monitoring & Evaluation Unit", Directorate: DirectoratePPBME, Aliases: []string{"M&E Unit"}},

	{Name: "Research Unit", Directorate: DirectorateRSIM},
	{Name: "Statistics Unit", Directorate: DirectorateRSIM},
	{Name: "Information Technology Unit", Directorate: DirectorateRSIM, Critical: true, Aliases: []string{"IT Unit", "ICT Unit", "MIS Unit"}},
	{Name: "Records Unit", Directorate: DirectorateRSIM, Aliases: []string{"Registry", "Records Management Unit"}},

	{Name: "Internal Audit Unit", Reporting: Independent, Critical: true, Aliases: []string{"Audit Unit", "Internal Audit"}},
	{Name: "Legal Unit", Reporting: Independent, Aliases: []string{"Legal Services Unit"}},
	{Name: "Public Relations Unit", Reporting: Independent, Aliases: []string{"PR Unit", "Public Affairs Unit", "Communications Unit"}},
	{Name: "Client Service Unit", Reporting: Independent, Aliases: []string{"Client Services Unit", "Customer Service Unit"}},

	{Name: "Protocol Unit", Directorate: DirectorateOffice, Reporting: ReportsToChiefDirector},
	{Name: "Chief Director's Secretariat", Directorate: DirectorateOffice, Reporting: ReportsToChiefDirector, Aliases: []string{"Office of the Chief Director", "Secretariat"}},
}

var (
	unitIndex        = map[string]*Unit{}
	directorateIndex = map[string]*Directorate{}
)

func init() {
	for i := range Units {
		u := &Units[i]
		unitIndex[unitKey(u.Name)] = u
		for _, alias := range u.Aliases {
			unitIndex[unitKey(alias)] = u
		}
	}
	for i := range Directorates {
		d := &Directorates[i]
		directorateIndex[normalize(d.Name)] = d
		directorateIndex[normalize(d.Acronym)] = d
		directorateIndex[normalize(d.Acronym+" Directorate")] = d
		directorateIndex[normalize(d.Name+" Directorate")] = d
	}
}

// LookupUnit finds a unit by name or alias.
func LookupUnit(name string) (Unit, bool) {
	u, ok := unitIndex[unitKey(name)]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// LookupDirectorate finds a directorate by name or acronym.
func LookupDirectorate(name string) (Directorate, bool) {
	d, ok := directorateIndex[normalize(name)]
	if !ok {
		return Directorate{}, false
	}
	return *d, true
}

// DirectorateOf prefers the explicit directorate and falls back to the one the unit belongs to.
func DirectorateOf(unit, directorate string) (Directorate, bool) {
	if d, ok := LookupDirectorate(directorate); ok {
		return d, true
	}
	if u, ok := LookupUnit(unit); ok && u.Directorate != "" {
		return LookupDirectorate(u.Directorate)
	}
	return Directorate{}, false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.NewReplacer(",", " ", ".", " ", "'", "", "’", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// unitKey drops a leading "the" and a trailing "unit" so "the Legal Unit" and "Legal" collide.
func unitKey(s string) string {
	s = normalize(s)
	s = strings.TrimPrefix(s, "the ")
	s = strings.TrimSuffix(s, " unit")
	return s
}

// SameUnit compares unit names through the catalogue, so aliases are equal.
func SameUnit(a, b string) bool {
	ua, okA := LookupUnit(a)
	ub, okB := LookupUnit(b)
	if okA && okB {
		return ua.Name == ub.Name
	}
	return unitKey(a) == unitKey(b)
}

// SameDirectorate compares directorates by acronym when both are known.
func SameDirectorate(a, b string) bool {
	da, okA := LookupDirectorate(a)
	db, okB := LookupDirectorate(b)
	if okA && okB {
		return da.Acronym == db.Acronym
	}
	return normalize(a) == normalize(b)
}

// SameTitle compares position titles ignoring case, punctuation and acting prefixes.
func SameTitle(a, b string) bool {
	return title(a) == title(b)
}

// HROfficerTitles are the position titles, lowercased and without grade
// prefixes such as "senior", that make HRMD staff an HR officer. Other
// officer-class HRMD staff route as ordinary HRMD staff.
var HROfficerTitles = []string{
	"human resource officer",
	"human resource management officer",
	"human resources officer",
	"hr officer",
	"hrm officer",
	"personnel officer",
}
