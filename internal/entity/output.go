package entity

const (
	ContactsFileName   = "mailchimp_contacts.csv"
	VolunteersFileName = "mailchimp_volunteers.csv"

	// Number of team columns in the contacts schema.
	MaxTeamColumns = 4
)

var ContactHeader = []string{
	"Email Address",
	"First Name",
	"Last name",
	"Affiliation",
	"City",
	"County",
	"Zip Code",
	"Team 1 Type & Number",
	"Team 2 Type & Number",
	"Team 3 Type & Number",
	"Team 4 Type & Number",
	"Country",
	"State",
	"Tags",
}

var VolunteerHeader = []string{
	"Email Address",
	"First Name",
	"Last name",
	"Affiliation",
	"City",
	"Zip Code",
	"Country",
	"State",
	"Tags",
}

// ContactRow is one line of the Mailchimp contacts import.
type ContactRow struct {
	Email       string
	FirstName   string
	LastName    string
	Affiliation string
	City        string
	County      string
	ZipCode     string
	Teams       [MaxTeamColumns]string
	Country     string
	State       string
	Tags        string
}

func (r ContactRow) Record() []string {
	return []string{
		r.Email, r.FirstName, r.LastName, r.Affiliation,
		r.City, r.County, r.ZipCode,
		r.Teams[0], r.Teams[1], r.Teams[2], r.Teams[3],
		r.Country, r.State, r.Tags,
	}
}

// VolunteerRow is one line of the Mailchimp volunteers import.
type VolunteerRow struct {
	Email       string
	FirstName   string
	LastName    string
	Affiliation string
	City        string
	ZipCode     string
	Country     string
	State       string
	Tags        string
}

func (r VolunteerRow) Record() []string {
	return []string{
		r.Email, r.FirstName, r.LastName, r.Affiliation,
		r.City, r.ZipCode, r.Country, r.State, r.Tags,
	}
}

// Sheet is a header plus records, ready for a row sink.
type Sheet struct {
	Header  []string
	Records [][]string
}

func (s Sheet) Len() int {
	return len(s.Records)
}

func ContactSheet(rows []ContactRow) Sheet {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return Sheet{Header: ContactHeader, Records: records}
}

func VolunteerSheet(rows []VolunteerRow) Sheet {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return Sheet{Header: VolunteerHeader, Records: records}
}
