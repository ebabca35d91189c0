package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

// RosterOptions tunes the contacts expansion.
type RosterOptions struct {
	// PerProgramTags resets Tags and Affiliation for every program row.
	// By default they accumulate across a contact's programs.
	PerProgramTags bool
}

type rosterRole struct {
	nameColumn  string
	emailColumn string
}

var rosterRoles = []rosterRole{
	{"LC1 Name", "LC1 Email"},
	{"LC2 Name", "LC2 Email"},
	{"Team Admin Name", "Team Admin Email"},
}

// BuildRosterContacts turns active team roster rows into Mailchimp contact
// rows, one per contact and program.
func BuildRosterContacts(rows []entity.RawRow, opts RosterOptions) []entity.ContactRow {
	book := entity.NewContactBook(entity.Profile{})

	for _, row := range rows {
		if row.Trimmed("Active Team") != "Active" {
			continue
		}

		program := strings.ToUpper(row.Trimmed("Program"))
		teamID := program + teamNumber(row.Get("Team Number"))

		for _, role := range rosterRoles {
			email := row.Get(role.emailColumn)
			if strings.TrimSpace(email) == "" {
				continue
			}

			first, last := entity.SplitName(row.Get(role.nameColumn))
			f := entity.Fragment{
				Profile: entity.Profile{
					Email:     email,
					FirstName: first,
					LastName:  last,
					City:      row.Get("Team City"),
					County:    row.Get("Team County"),
					ZipCode:   row.Get("Team Postal Code"),
					Country:   row.Get("Team Country"),
					State:     row.Get("Team State Province"),
				},
			}
			if teamID != "" {
				f.Teams = []string{teamID}
			}
			if program != "" {
				f.Programs = []string{program}
			}
			book.Merge(email, f)
		}
	}

	return expandRoster(book, opts)
}

func expandRoster(book *entity.ContactBook, opts RosterOptions) []entity.ContactRow {
	var out []entity.ContactRow

	for _, c := range book.Contacts() {
		var teams [entity.MaxTeamColumns]string
		for i, id := range c.Teams.Values() {
			if i >= entity.MaxTeamColumns {
				break
			}
			teams[i] = id
		}

		programs := c.Programs.Values()
		if len(programs) == 0 {
			out = append(out, contactRow(c, teams, "", ""))
			continue
		}

		var tags, affiliations []string
		for _, prog := range programs {
			if opts.PerProgramTags {
				tags, affiliations = nil, nil
			}
			tags = append(tags, prog, prog+" coach")
			affiliations = append(affiliations, prog+" Coach/Mentor")

			out = append(out, contactRow(c, teams,
				strings.Join(affiliations, ", "),
				strings.Join(tags, ", "),
			))
		}
	}

	return out
}

func contactRow(c *entity.Contact, teams [entity.MaxTeamColumns]string, affiliation, tags string) entity.ContactRow {
	p := c.Profile
	return entity.ContactRow{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Affiliation: affiliation,
		City:        p.City,
		County:      p.County,
		ZipCode:     p.ZipCode,
		Teams:       teams,
		Country:     p.Country,
		State:       p.State,
		Tags:        tags,
	}
}

// teamNumber renders the Team Number column as an integer. Spreadsheet
// exports sometimes carry it as "118.0"; anything non-numeric becomes "".
func teamNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return strconv.Itoa(n)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	return strconv.FormatInt(int64(f), 10)
}
