package entity

// Profile holds the overwrite fields of a contact: every merge replaces them
// with the incoming values.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	City      string
	County    string
	ZipCode   string
	Country   string
	State     string

	// Affiliation is only replaced by a non-empty value.
	Affiliation string
}

// Fragment is the partial contact contributed by one row (or one role slot of
// a roster row).
type Fragment struct {
	Profile  Profile
	Teams    []string
	Programs []string
	Tags     []string
}

// Contact is a person merged across every fragment sharing a key.
// Profile is last-write-wins; the sets only ever grow.
type Contact struct {
	Key      string
	Profile  Profile
	Teams    OrderedSet
	Programs OrderedSet
	Tags     OrderedSet
}

func (c *Contact) apply(f Fragment) {
	affiliation := c.Profile.Affiliation
	c.Profile = f.Profile
	if f.Profile.Affiliation == "" {
		c.Profile.Affiliation = affiliation
	}

	c.Teams.Add(f.Teams...)
	c.Programs.Add(f.Programs...)
	c.Tags.Add(f.Tags...)
}

// ContactBook maps a merge key to its Contact. Lookups never create entries;
// only Merge does.
type ContactBook struct {
	defaults Profile
	order    []string
	contacts map[string]*Contact
}

// NewContactBook returns an empty book whose new contacts start from defaults.
func NewContactBook(defaults Profile) *ContactBook {
	return &ContactBook{
		defaults: defaults,
		contacts: make(map[string]*Contact),
	}
}

// Merge folds f into the contact stored under key, creating it first if the
// key has not been seen.
func (b *ContactBook) Merge(key string, f Fragment) *Contact {
	c, ok := b.contacts[key]
	if !ok {
		c = &Contact{Key: key, Profile: b.defaults}
		b.contacts[key] = c
		b.order = append(b.order, key)
	}
	c.apply(f)
	return c
}

func (b *ContactBook) Get(key string) (*Contact, bool) {
	c, ok := b.contacts[key]
	return c, ok
}

func (b *ContactBook) Len() int {
	return len(b.order)
}

// Contacts lists every contact in order of first appearance.
func (b *ContactBook) Contacts() []*Contact {
	out := make([]*Contact, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.contacts[key])
	}
	return out
}
