package textbook

// Group collects the raw labels that normalize to the same textbook name.
type Group struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Count  int      `json:"count"`
}

// Grouping is the result of GroupLabels.
type Grouping struct {
	Groups []Group `json:"groups"`
	// Unrecognized lists canonical names that still end in a parenthetical
	// annotation after normalization.
	Unrecognized []string `json:"unrecognized"`
}

// GroupLabels normalizes every label and groups them by canonical name.
// Groups appear in the order their first label was seen; Labels holds each
// distinct raw label once while Count counts every occurrence. Labels that
// normalize to an empty string are skipped.
func GroupLabels(labels []string) Grouping {
	result := Grouping{
		Groups:       []Group{},
		Unrecognized: []string{},
	}

	index := make(map[string]int)
	seen := make(map[string]struct{})

	for _, raw := range labels {
		name := Normalize(raw)
		if name == "" {
			continue
		}

		i, ok := index[name]
		if !ok {
			i = len(result.Groups)
			index[name] = i
			result.Groups = append(result.Groups, Group{Name: name})
			if HasTrailingAnnotation(name) {
				result.Unrecognized = append(result.Unrecognized, name)
			}
		}

		g := &result.Groups[i]
		g.Count++
		key := name + "\x00" + raw
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			g.Labels = append(g.Labels, raw)
		}
	}

	return result
}
