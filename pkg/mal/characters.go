package mal

// Character is an anime character sub-entity.
type Character struct {
	ID              int      `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	AlternativeName string   `json:"alternative_name"`
	MainPicture     *Picture `json:"main_picture"`
	Biography       string   `json:"biography"`
	NumFavorites    int      `json:"num_favorites"`
}

// Name renders the character's display name, appending the alternative
// name in parentheses when present.
func (c *Character) Name() string {
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	if c.AlternativeName != "" {
		name += " (" + c.AlternativeName + ")"
	}
	return name
}

// CharacterEntry pairs a character with its role in the anime.
type CharacterEntry struct {
	Node Character     `json:"node"`
	Role CharacterRole `json:"role"`
}

// CharacterPage is one page of an anime's character listing.
type CharacterPage struct {
	Data   []CharacterEntry `json:"data"`
	Paging Paging           `json:"paging"`
}
