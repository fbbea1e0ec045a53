package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sablewing/gridspeak/internal/nav"
)

const sawmillWoodCost = 40

// MenuScreen exposes the world's menu surface for the session wiring.
func (w *World) MenuScreen() nav.Screen {
	return &w.screen
}

// OpenMenu opens the menu screen. The session's menu handler picks up
// focus on the next key.
func (w *World) OpenMenu() {
	w.screen.open = true
}

// MenuOpen reports whether the menu screen is open.
func (w *World) MenuOpen() bool {
	return w.screen.open
}

// MenuRoot returns the loader for the root menu level.
func (w *World) MenuRoot() nav.Loader {
	return func() ([]nav.Item, error) {
		return []nav.Item{
			{ID: "buildings", Label: "Buildings", Loader: w.buildingItems},
			{ID: "actions", Label: "Actions", Loader: w.actionItems},
			{ID: "stock", Label: "Stock", Loader: w.stockItems},
		}, nil
	}
}

func (w *World) buildingItems() ([]nav.Item, error) {
	items := make([]nav.Item, 0, len(w.structures))
	for _, s := range w.structures {
		name := s.Name
		facing := s.Facing
		items = append(items, nav.Item{
			ID:    name,
			Label: name,
			Loader: func() ([]nav.Item, error) {
				return []nav.Item{
					{
						ID:    name + "/describe",
						Label: "Describe",
						Activate: func() (string, error) {
							return fmt.Sprintf("%s, entrance facing %s", name, facing), nil
						},
					},
					{
						ID:       name + "/demolish",
						Label:    "Demolish",
						Activate: w.demolishAction(name),
					},
				}, nil
			},
		})
	}
	return items, nil
}

func (w *World) actionItems() ([]nav.Item, error) {
	return []nav.Item{
		{
			ID:    "build-sawmill",
			Label: "Build sawmill",
			Activate: func() (string, error) {
				if w.stock["wood"] < sawmillWoodCost {
					return "", fmt.Errorf("not enough wood, need %d", sawmillWoodCost)
				}
				w.stock["wood"] -= sawmillWoodCost
				return "sawmill site marked", nil
			},
		},
	}, nil
}

// demolishAction routes through the confirmation gate: the destructive
// side effect only runs when the pending prompt is accepted.
func (w *World) demolishAction(name string) func() (string, error) {
	return func() (string, error) {
		if w.confirm == nil {
			return "", errors.New("confirmation unavailable")
		}
		err := w.confirm(fmt.Sprintf("demolish %s?", name), func() string {
			text, ok := w.demolish(name)
			if !ok {
				return fmt.Sprintf("%s already gone", name)
			}
			return text
		})
		if err != nil {
			return "", err
		}
		// The prompt was spoken by the gate; nothing to announce here.
		return "", nil
	}
}

func (w *World) stockItems() ([]nav.Item, error) {
	goods := make([]string, 0, len(w.stock))
	for good := range w.stock {
		goods = append(goods, good)
	}
	sort.Strings(goods)
	items := make([]nav.Item, 0, len(goods))
	for _, good := range goods {
		good := good
		items = append(items, nav.Item{
			ID:    "stock/" + good,
			Label: fmt.Sprintf("%s: %d", good, w.stock[good]),
			// Read-only rows: activation re-announces.
			SearchKey: good,
		})
	}
	return items, nil
}
