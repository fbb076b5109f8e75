package derive

import "sort"

// MaxCompanyTechnologies caps a company's technology list.
const MaxCompanyTechnologies = 20

// TopTechnologies counts how many lists mention each technology and returns
// the n most frequent. Ties keep the order in which technologies were first
// seen. A non-positive n returns every technology.
func TopTechnologies(lists [][]string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, list := range lists {
		for _, tech := range list {
			if _, ok := counts[tech]; !ok {
				order = append(order, tech)
			}
			counts[tech]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if n > 0 && len(order) > n {
		order = order[:n]
	}
	return order
}
