package usecase

import (
	"strings"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

const volunteerAffiliation = "Volunteer"

var volunteerRoleTags = []struct {
	needle string
	tag    string
}{
	{"judge", "Judge"},
	{"referee", "Referee"},
	{"fta", "FTA"},
	{"csa", "CSA"},
}

// BuildVolunteerContacts merges volunteer rows by lowercased email and
// derives their tags.
func BuildVolunteerContacts(rows []entity.RawRow) []entity.VolunteerRow {
	book := entity.NewContactBook(entity.Profile{Affiliation: volunteerAffiliation})

	for _, row := range rows {
		email := strings.ToLower(row.Trimmed("Email"))
		if email == "" {
			continue
		}

		f := entity.Fragment{
			Profile: entity.Profile{
				Email:     email,
				FirstName: row.Trimmed("Preferred Name"),
				LastName:  row.Trimmed("Last Name"),
				City:      row.Trimmed("City"),
				ZipCode:   row.Trimmed("Postalcode"),
				Country:   row.Trimmed("Country"),
				State:     row.Trimmed("State/Province"),
			},
			Tags: volunteerTags(row),
		}
		if employer := row.Trimmed("Current Employer"); employer != "" {
			f.Profile.Affiliation = volunteerAffiliation + ", " + employer
		}

		book.Merge(email, f)
	}

	out := make([]entity.VolunteerRow, 0, book.Len())
	for _, c := range book.Contacts() {
		p := c.Profile
		out = append(out, entity.VolunteerRow{
			Email:       p.Email,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Affiliation: p.Affiliation,
			City:        p.City,
			ZipCode:     p.ZipCode,
			Country:     p.Country,
			State:       p.State,
			Tags:        strings.Join(c.Tags.Sorted(), ", "),
		})
	}
	return out
}

func volunteerTags(row entity.RawRow) []string {
	var tags []string
	if program := strings.ToUpper(row.Trimmed("Program")); program != "" {
		tags = append(tags, program)
	}

	roles := strings.ToLower(row.Get("Volunteer Roles"))
	for _, rt := range volunteerRoleTags {
		if strings.Contains(roles, rt.needle) {
			tags = append(tags, rt.tag)
		}
	}
	return tags
}
