package driver

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSuiteBasic(t *testing.T) {
	suite, err := LoadSuite(filepath.Join("testdata", "basic.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, c := range suite.Cases {
		if err := suite.Run(c); err != nil {
			t.Errorf("%s: %v", c.Name, err)
		}
	}
}

func TestLoadSuiteRejectsUnknownFields(t *testing.T) {
	_, err := LoadSuite(filepath.Join("testdata", "bad_field.yml"))
	if err == nil || !strings.Contains(err.Error(), "wants") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadSuiteMissingFile(t *testing.T) {
	if _, err := LoadSuite(filepath.Join("testdata", "absent.yml")); err == nil {
		t.Fatal("expected an error for a missing suite")
	}
}

func TestSuiteCaseExpectationMismatch(t *testing.T) {
	suite := &Suite{Path: filepath.Join("testdata", "basic.yml")}
	c := &Case{
		Name:   "wrong want",
		Script: "main (args : list(string)) : uint = 5;",
		Want:   "6",
	}
	if err := suite.Run(c); err == nil {
		t.Fatal("expected a mismatch error")
	}

	c = &Case{
		Name:      "unexpected success",
		Script:    "main (args : list(string)) : uint = 5;",
		WantError: "boom",
	}
	if err := suite.Run(c); err == nil {
		t.Fatal("expected an error for an unexpectedly passing case")
	}
}
