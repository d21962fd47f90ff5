package template

// Suggestion is a ready-made template proposed from the available field keys.
type Suggestion struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

// Suggest pattern-matches common key-name combinations and proposes templates
// built from them. It is best-effort and non-authoritative; when nothing
// matches it returns an empty list.
func Suggest(availableKeys []string) []Suggestion {
	has := make(map[string]bool, len(availableKeys))
	for _, k := range availableKeys {
		has[k] = true
	}

	var out []Suggestion
	if has["firstName"] && has["lastName"] {
		if has["middleName"] {
			out = append(out, Suggestion{
				Name:     "Full name with middle",
				Template: "{firstName} {middleName} {lastName}",
			})
		}
		out = append(out, Suggestion{
			Name:     "Full name",
			Template: "{firstName} {lastName}",
		})
		out = append(out, Suggestion{
			Name:     "Last name first",
			Template: "{lastName}, {firstName}",
		})
	}
	if has["address"] && has["city"] && has["state"] {
		if has["zip"] {
			out = append(out, Suggestion{
				Name:     "Full address",
				Template: "{address}, {city}, {state} {zip}",
			})
		} else {
			out = append(out, Suggestion{
				Name:     "Address line",
				Template: "{address}, {city}, {state}",
			})
		}
	}
	if has["city"] && has["state"] && !has["address"] {
		out = append(out, Suggestion{
			Name:     "City and state",
			Template: "{city}, {state}",
		})
	}
	if has["email"] && has["phone"] {
		out = append(out, Suggestion{
			Name:     "Contact",
			Template: "{email}, {phone}",
		})
	}
	return out
}
