package patterns

import (
	"reflect"
	"testing"

	"cmg/internal/errors"
	"cmg/internal/model"
)

// webAppInstance models a small layered web app used across the
// discovery tests.
func webAppInstance() *model.Instance {
	return &model.Instance{
		Artifacts: map[string]model.Artifact{
			"ui/UserProfile.jsx":          {Type: "component"},
			"ui/user-list.jsx":            {Type: "component"},
			"services/userService.js":     {Type: "service", Exports: []string{"getUser", "updateUser", "deleteUser", "listUsers", "createUser"}},
			"services/authService.js":     {Type: "service", Exports: []string{"login", "logout"}},
			"models/user.js":              {Type: "model", Exports: []string{"User"}},
			"db/userStore.js":             {Type: "repository", Exports: []string{"save", "load"}},
			"utils/format.js":             {Type: "util", Exports: []string{"formatDate"}},
			"utils/index.js":              {Type: "util", Kind: "barrel", Exports: []string{"formatDate", "parseDate"}},
			"main.js":                     {Type: "module", Kind: "entry"},
			"tests/userService.test.js":   {Type: "test"},
		},
		Dependencies: []model.Dependency{
			{From: "ui/UserProfile.jsx", To: "services/userService.js", Kind: "import"},
			{From: "ui/user-list.jsx", To: "services/userService.js", Kind: "import"},
			{From: "services/userService.js", To: "models/user.js", Kind: "import"},
			{From: "services/userService.js", To: "db/userStore.js", Kind: "import"},
			{From: "services/authService.js", To: "utils/format.js", Kind: "import"},
			{From: "services/userService.js", To: "utils/format.js", Kind: "import"},
			{From: "ui/UserProfile.jsx", To: "utils/format.js", Kind: "import"},
			{From: "main.js", To: "services/userService.js", Kind: "call"},
			{From: "tests/userService.test.js", To: "services/userService.js", Kind: "import"},
		},
	}
}

func TestDiscoverUnknownCategory(t *testing.T) {
	_, err := Discover(nil, webAppInstance(), Options{Category: "vibes"})
	if !errors.IsCode(err, errors.UnsupportedQuery) {
		t.Errorf("expected UNSUPPORTED_QUERY, got %v", err)
	}
}

func TestDiscoverEmptyAreaScope(t *testing.T) {
	res, err := Discover(nil, webAppInstance(), Options{Category: CategoryNaming, Area: "nonexistent/*"})
	if err != nil {
		t.Fatalf("expected valid empty result, got error %v", err)
	}
	total := 0
	for _, c := range res.Naming.FileNames.Distribution {
		total += c
	}
	if total != 0 {
		t.Errorf("expected empty distribution for empty scope, got %v", res.Naming.FileNames.Distribution)
	}
}

func TestDiscoverAreaScoping(t *testing.T) {
	res, err := Discover(nil, webAppInstance(), Options{Category: CategoryNaming, Area: "ui/*"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	total := 0
	for _, c := range res.Naming.FileNames.Distribution {
		total += c
	}
	if total != 2 {
		t.Errorf("expected 2 in-scope artifacts under ui/, got %d", total)
	}
}

func TestDiscoverDeterminism(t *testing.T) {
	instance := webAppInstance()
	categories := []Options{
		{Category: CategoryNaming},
		{Category: CategoryOrganization},
		{Category: CategoryModules},
		{Category: CategoryArchitecture},
		{Category: CategorySimilar, FeatureType: "user service"},
	}

	for _, opts := range categories {
		t.Run(string(opts.Category), func(t *testing.T) {
			first, err := Discover(nil, instance, opts)
			if err != nil {
				t.Fatalf("Discover failed: %v", err)
			}
			for i := 0; i < 5; i++ {
				again, err := Discover(nil, instance, opts)
				if err != nil {
					t.Fatalf("Discover failed: %v", err)
				}
				if !reflect.DeepEqual(first, again) {
					t.Fatalf("expected identical results across runs")
				}
			}
		})
	}
}
