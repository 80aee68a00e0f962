package supportscolor

import "testing"

func TestEnvForceLevel(t *testing.T) {
	type forceCase struct {
		value string
		level ColorLevel
		ok    bool
	}
	cases := []forceCase{
		{"true", ColorLevelBasic, true},
		{"", ColorLevelBasic, true},
		{"false", ColorLevelNone, true},
		{"0", ColorLevelNone, true},
		{"1", ColorLevelBasic, true},
		{"2", ColorLevelAnsi256, true},
		{"3", ColorLevelAnsi16m, true},
		{"4", ColorLevelNone, false},
		{"99", ColorLevelNone, false},
		{"-1", ColorLevelNone, false},
		{"2.5", ColorLevelNone, false},
		{"yes", ColorLevelNone, false},
	}
	for i, testCase := range cases {
		resolver := NewResolverFromSources(Sources{Env: testEnv("FORCE_COLOR", testCase.value)})
		level, ok := resolver.envForceLevel()
		if level != testCase.level || ok != testCase.ok {
			t.Errorf("test case %d failed: FORCE_COLOR=%q: want (%d, %v), got (%d, %v)",
				i, testCase.value, testCase.level, testCase.ok, level, ok)
		}
	}

	resolver := NewResolverFromSources(Sources{})
	if _, ok := resolver.envForceLevel(); ok {
		t.Error("absent FORCE_COLOR must force nothing")
	}
}

func TestTeamCityVersionPattern(t *testing.T) {
	matching := []string{"9.1.0", "9.01.5", "9.10.2", "10.0.0", "2023.11.1"}
	nonMatching := []string{"", "8.1.5", "9.0.0", "9.0.99", "banana"}
	for _, version := range matching {
		if !teamcityVersionPattern.MatchString(version) {
			t.Errorf("TeamCity %q should support ANSI", version)
		}
	}
	for _, version := range nonMatching {
		if teamcityVersionPattern.MatchString(version) {
			t.Errorf("TeamCity %q should not support ANSI", version)
		}
	}
}

func TestMajorVersion(t *testing.T) {
	cases := map[string]int{
		"3.5.2":   3,
		"12.0":    12,
		"3":       3,
		"3beta.1": 3,
		"beta.3":  0,
		"":        0,
	}
	for version, want := range cases {
		if got := majorVersion(version); got != want {
			t.Errorf("majorVersion(%q): want %d, got %d", version, want, got)
		}
	}
}

func TestParseVersionTriple(t *testing.T) {
	type tripleCase struct {
		input               string
		major, minor, build int
	}
	cases := []tripleCase{
		{"10.0.14931", 10, 0, 14931},
		{"6.3.9600", 6, 3, 9600},
		{"10.0", 10, 0, 0},
		{"10.0.junk", 10, 0, 0},
		{"", 0, 0, 0},
	}
	for i, testCase := range cases {
		major, minor, build := parseVersionTriple(testCase.input)
		if major != testCase.major || minor != testCase.minor || build != testCase.build {
			t.Errorf("test case %d failed: parseVersionTriple(%q): want (%d,%d,%d), got (%d,%d,%d)",
				i, testCase.input, testCase.major, testCase.minor, testCase.build, major, minor, build)
		}
	}
}
