package supportscolor

import "testing"

type hasFlagTestCase struct {
	flag    string
	args    []string
	present bool
}

var hasFlagTestCases = []hasFlagTestCase{
	{"color", nil, false},
	{"color", []string{"--color"}, true},
	{"color", []string{"-v", "--color", "input.txt"}, true},
	{"color", []string{"--colors"}, false},
	{"color", []string{"--color=256"}, false},
	{"color=256", []string{"--color=256"}, true},
	{"c", []string{"-c"}, true},
	{"c", []string{"--c"}, false},
	{"--color", []string{"--color"}, true},
	{"-c", []string{"-c"}, true},
	{"color", []string{"--", "--color"}, false},
	{"color", []string{"--color", "--"}, true},
	{"color", []string{"build", "--", "--color"}, false},
}

func TestHasFlag(t *testing.T) {
	for i, testCase := range hasFlagTestCases {
		if got := hasFlag(testCase.flag, testCase.args); got != testCase.present {
			t.Errorf("test case %d failed: hasFlag(%q, %v): want %v, got %v",
				i, testCase.flag, testCase.args, testCase.present, got)
		}
	}
}

func TestFlagCacheInvalidation(t *testing.T) {
	var cache flagCache

	withColor := []string{"--color"}
	if !cache.lookup("color", withColor) {
		t.Fatal("expected --color to be found")
	}
	if level, ok := cache.forceLevel(withColor); !ok || level != ColorLevelBasic {
		t.Fatalf("want forced basic, got (%d, %v)", level, ok)
	}

	// a different argv snapshot must drop every cached result
	withoutColor := []string{"build"}
	if cache.lookup("color", withoutColor) {
		t.Fatal("stale cache entry survived an argv change")
	}
	if _, ok := cache.forceLevel(withoutColor); ok {
		t.Fatal("stale forced level survived an argv change")
	}

	if level := cache.explicitLevel([]string{"--color=full"}); level != ColorLevelAnsi16m {
		t.Errorf("want explicit ansi16m, got %d", level)
	}
	if level := cache.explicitLevel([]string{"--color=256"}); level != ColorLevelAnsi256 {
		t.Errorf("want explicit ansi256, got %d", level)
	}
}

func TestFlagForcePriority(t *testing.T) {
	var cache flagCache

	// disables win over enables regardless of position
	args := []string{"--color=always", "--no-color"}
	if level, ok := cache.forceLevel(args); !ok || level != ColorLevelNone {
		t.Errorf("want forced none, got (%d, %v)", level, ok)
	}

	cache.clear()
	args = []string{"--color=always"}
	if level, ok := cache.forceLevel(args); !ok || level != ColorLevelBasic {
		t.Errorf("want forced basic, got (%d, %v)", level, ok)
	}
}
