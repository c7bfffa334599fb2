// SPDX-License-Identifier: MIT
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chromabags/chromabags/internal/models"
	"gorm.io/gorm"
)

// Match fields, best first
const (
	MatchName   = "name"
	MatchModel  = "model"
	MatchColor  = "color"
	MatchScheme = "scheme"
)

// SearchResult represents a single search result
type SearchResult struct {
	CombinationID uint   `json:"combination_id"`
	Name          string `json:"name"`
	BagModel      string `json:"bag_model"`
	Scheme        string `json:"scheme"`
	Match         string `json:"match"`
	URL           string `json:"url"`
	rank          int
}

// Search finds combinations whose name, bag model, scheme or colors contain query.
// A leading '#' in query is ignored when matching hex colors. The query is
// matched literally, so % and _ are not wildcards.
func Search(db *gorm.DB, query string) ([]SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []SearchResult{}, nil
	}

	like := "%" + escapeLike(query) + "%"
	hex := strings.TrimPrefix(query, "#")

	where := `LOWER(combinations.name) LIKE ? ESCAPE '!' OR LOWER(combinations.scheme) LIKE ? ESCAPE '!'
		OR LOWER(bag_models.name) LIKE ? ESCAPE '!' OR LOWER(bag_models.archetype) LIKE ? ESCAPE '!'`
	args := []interface{}{like, like, like, like}
	if hex != "" {
		hexLike := "%" + escapeLike(hex) + "%"
		where += ` OR pc.hex LIKE ? ESCAPE '!' OR sc.hex LIKE ? ESCAPE '!' OR hc.hex LIKE ? ESCAPE '!'`
		args = append(args, hexLike, hexLike, hexLike)
	}

	var ids []uint
	err := db.Table("combinations").
		Joins("JOIN bag_models ON bag_models.id = combinations.bag_model_id").
		Joins("LEFT JOIN colors pc ON pc.id = combinations.principal_color_id").
		Joins("LEFT JOIN colors sc ON sc.id = combinations.secondary_color_id").
		Joins("LEFT JOIN colors hc ON hc.id = combinations.handle_color_id").
		Where(where, args...).
		Distinct().
		Pluck("combinations.id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	if len(ids) == 0 {
		return []SearchResult{}, nil
	}

	var combos []models.Combination
	err = db.Preload("BagModel").
		Preload("PrincipalColor").
		Preload("SecondaryColor").
		Preload("HandleColor").
		Where("id IN ?", ids).
		Find(&combos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	results := make([]SearchResult, 0, len(combos))
	for _, combo := range combos {
		match, rank := classify(combo, query)
		results = append(results, SearchResult{
			CombinationID: combo.ID,
			Name:          combo.Name,
			BagModel:      combo.BagModel.Name,
			Scheme:        combo.Scheme,
			Match:         match,
			URL:           fmt.Sprintf("/combinations/%d/svg", combo.ID),
			rank:          rank,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].rank != results[j].rank {
			return results[i].rank < results[j].rank
		}
		return results[i].Name < results[j].Name
	})

	return results, nil
}

// classify reports the best field query matched. An exact name ranks above a partial one.
func classify(combo models.Combination, query string) (string, int) {
	name := strings.ToLower(combo.Name)
	switch {
	case name == query:
		return MatchName, 0
	case strings.Contains(name, query):
		return MatchName, 1
	case strings.Contains(strings.ToLower(combo.BagModel.Name), query),
		strings.Contains(combo.BagModel.Archetype, query):
		return MatchModel, 2
	}

	if hex := strings.TrimPrefix(query, "#"); hex != "" {
		for _, c := range []*models.Color{combo.PrincipalColor, combo.SecondaryColor, combo.HandleColor} {
			if c != nil && strings.Contains(c.Hex, hex) {
				return MatchColor, 3
			}
		}
	}
	return MatchScheme, 4
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike quotes LIKE wildcards for use with ESCAPE '!'
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
