package availability

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		resName     string
		description string
		want        Category
	}{
		{"padel keyword", "Padel 1", "", CategoryPadel},
		{"generic court keyword", "Terrain A", "terrain couvert", CategoryPadel},
		{"case insensitive", "PADEL CENTRAL", "", CategoryPadel},
		{"tennis wins over generic court", "Court de tennis 2", "", CategoryTennis},
		{"cardio from description", "Machine 3", "Vélo elliptique", CategoryCardio},
		{"treadmill", "Tapis de course", "", CategoryCardio},
		{"strength equipment", "Banc 2", "banc de musculation", CategoryStrength},
		{"no match falls back to padel", "Salle B", "polyvalente", CategoryPadel},
		{"empty input falls back to padel", "", "", CategoryPadel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.resName, tt.description); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.resName, tt.description, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Classify("Court de tennis", "avec vélo d'échauffement"); got != CategoryTennis {
			t.Fatalf("classification changed between calls: got %v", got)
		}
	}
}

func TestRulesForUnknownCategory(t *testing.T) {
	r := RulesFor(Category("rooftop_pool"))
	if r != defaultRules {
		t.Errorf("unknown category rules = %+v, want default %+v", r, defaultRules)
	}
}
